package pld_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/prevlav/cumplimiento-api/internal/domain/pld"
)

func limites() pld.Limites {
	// UMA 113.14: identificación a 1605 UMA, aviso a 3210 UMA.
	return pld.Limites{
		Identificacion: decimal.RequireFromString("181589.70"),
		Aviso:          decimal.RequireFromString("363179.40"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluar
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluar_PorDebajoDeAmbos(t *testing.T) {
	ev := pld.Evaluar(decimal.RequireFromString("1500"), limites())
	assert.False(t, ev.RequiereIdentificacion)
	assert.False(t, ev.RequiereAviso)
}

func TestEvaluar_UmbralExactoDispara(t *testing.T) {
	// La obligación nace al alcanzar el umbral, no al rebasarlo.
	ev := pld.Evaluar(decimal.RequireFromString("181589.70"), limites())
	assert.True(t, ev.RequiereIdentificacion)
	assert.False(t, ev.RequiereAviso)
}

func TestEvaluar_UnCentavoPorDebajo(t *testing.T) {
	ev := pld.Evaluar(decimal.RequireFromString("181589.69"), limites())
	assert.False(t, ev.RequiereIdentificacion)
}

func TestEvaluar_AvisoImplicaIdentificacion(t *testing.T) {
	ev := pld.Evaluar(decimal.RequireFromString("400000"), limites())
	assert.True(t, ev.RequiereIdentificacion)
	assert.True(t, ev.RequiereAviso)
}

// ──────────────────────────────────────────────────────────────────────────────
// PeriodoVencido
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriodoVencido_DentroDeLaVentana(t *testing.T) {
	inicio := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	ahora := time.Date(2024, time.July, 14, 23, 59, 59, 0, time.UTC)
	assert.False(t, pld.PeriodoVencido(inicio, 6, ahora))
}

func TestPeriodoVencido_JustoAlCumplirse(t *testing.T) {
	inicio := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	ahora := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, pld.PeriodoVencido(inicio, 6, ahora),
		"el instante exacto de los seis meses ya cierra el periodo")
}

func TestPeriodoVencido_MesesNoPositivos(t *testing.T) {
	inicio := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	ahora := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, pld.PeriodoVencido(inicio, 0, ahora),
		"meses <= 0 desactiva el vencimiento")
}
