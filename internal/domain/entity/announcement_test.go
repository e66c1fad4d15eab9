package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de enums
// ──────────────────────────────────────────────────────────────────────────────

func TestUrgencyLevel_ValorDesconocidoCaeAMedia(t *testing.T) {
	a := &entity.Announcement{Urgencia: "critiquísima"}
	assert.Equal(t, entity.UrgenciaMedia, a.UrgencyLevel())

	a.Urgencia = ""
	assert.Equal(t, entity.UrgenciaMedia, a.UrgencyLevel())
}

func TestUrgencyLevel_ValoresConocidosSeConservan(t *testing.T) {
	for _, nivel := range []string{
		entity.UrgenciaBaja, entity.UrgenciaMedia, entity.UrgenciaAlta, entity.UrgenciaUrgente,
	} {
		a := &entity.Announcement{Urgencia: nivel}
		assert.Equal(t, nivel, a.UrgencyLevel())
	}
}

func TestStatus_ValorDesconocidoCaeAEnviado(t *testing.T) {
	a := &entity.Announcement{Estado: "perdido"}
	assert.Equal(t, entity.AvisoEnviado, a.Status())
}

func TestUrgencyColor(t *testing.T) {
	casos := map[string]string{
		entity.UrgenciaBaja:    "green",
		entity.UrgenciaMedia:   "yellow",
		entity.UrgenciaAlta:    "orange",
		entity.UrgenciaUrgente: "red",
		"cualquier otra cosa":  "yellow",
	}
	for urgencia, color := range casos {
		a := &entity.Announcement{Urgencia: urgencia}
		assert.Equal(t, color, a.UrgencyColor(), "color de %q", urgencia)
	}
}

func TestIsUrgent_AltaNoCuenta(t *testing.T) {
	assert.False(t, (&entity.Announcement{Urgencia: entity.UrgenciaAlta}).IsUrgent())
	assert.True(t, (&entity.Announcement{Urgencia: entity.UrgenciaUrgente}).IsUrgent())
}

// ──────────────────────────────────────────────────────────────────────────────
// Presentación
// ──────────────────────────────────────────────────────────────────────────────

func TestFormattedDate_PrefiereFechaExplicita(t *testing.T) {
	explicita := time.Date(2023, time.November, 29, 14, 30, 0, 0, time.UTC)
	a := &entity.Announcement{
		Fecha:     &explicita,
		CreatedAt: time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "29 de noviembre de 2023, 14:30", a.FormattedDate())

	a.Fecha = nil
	assert.Equal(t, "02 de enero de 2024, 09:00", a.FormattedDate())
}

func TestPreview_MensajeCortoCompleto(t *testing.T) {
	a := &entity.Announcement{Mensaje: "Recordatorio de entrega."}
	assert.Equal(t, "Recordatorio de entrega.", a.Preview(100))
}

func TestPreview_TruncaYAgregaPuntos(t *testing.T) {
	a := &entity.Announcement{Mensaje: strings.Repeat("a", 150)}
	out := a.Preview(100)
	assert.Equal(t, strings.Repeat("a", 100)+"...", out)
}

func TestPreview_CuentaRunasNoBytes(t *testing.T) {
	// "ñ" mide dos bytes; truncar por bytes partiría el carácter.
	a := &entity.Announcement{Mensaje: strings.Repeat("ñ", 10)}
	assert.Equal(t, strings.Repeat("ñ", 5)+"...", a.Preview(5))
}

func TestPreview_LongitudNoPositivaUsaDefault(t *testing.T) {
	a := &entity.Announcement{Mensaje: strings.Repeat("x", 150)}
	assert.Equal(t, strings.Repeat("x", entity.PreviewLength)+"...", a.Preview(0))
	assert.Equal(t, strings.Repeat("x", entity.PreviewLength)+"...", a.Preview(-7))
}
