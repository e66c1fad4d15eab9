package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
)

func TestHasReachedLimits_NilCuentaComoFalse(t *testing.T) {
	s := &entity.DonationTracking{}
	assert.False(t, s.HasReachedIdentificationLimit())
	assert.False(t, s.HasReachedNotificationLimit())
}

func TestHasReachedLimits_BanderasAlmacenadas(t *testing.T) {
	si := true
	no := false
	s := &entity.DonationTracking{LimiteIdentificacion: &si, LimiteAviso: &no}
	assert.True(t, s.HasReachedIdentificationLimit())
	assert.False(t, s.HasReachedNotificationLimit())
}

func TestAccumulatedAmount(t *testing.T) {
	s := &entity.DonationTracking{Acumulacion: decimal.RequireFromString("181595.4")}
	assert.Equal(t, "$181,595.40", s.AccumulatedAmount())
}

func TestPeriodStartDate(t *testing.T) {
	s := &entity.DonationTracking{}
	assert.Equal(t, "No definido", s.PeriodStartDate())

	inicio := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	s.FechaInicioPeriodo = &inicio
	assert.Equal(t, "03/06/2024", s.PeriodStartDate())
}
