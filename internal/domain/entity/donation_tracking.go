package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/prevlav/cumplimiento-api/pkg/fechas"
	"github.com/prevlav/cumplimiento-api/pkg/moneda"
)

// DonationTracking acumula donativos por donante dentro de un periodo
// abierto y registra si la acumulación cruzó los umbrales PLD.
// Las banderas se almacenan (el portal las lee tal cual); el cálculo vive en
// el paquete pld y lo aplica el caso de uso al registrar cada donativo.
type DonationTracking struct {
	ID                   string
	DonationID           *string // último donativo que tocó el acumulado
	DonorID              *string
	FechaInicioPeriodo   *time.Time
	Acumulacion          decimal.Decimal
	LimiteIdentificacion *bool // nil = no alcanzado
	LimiteAviso          *bool
	CreatedAt            time.Time

	Donation *Donation
	Donor    *Donor
}

// HasReachedIdentificationLimit reporta la bandera de identificación; nil cuenta como false.
func (t *DonationTracking) HasReachedIdentificationLimit() bool {
	return t.LimiteIdentificacion != nil && *t.LimiteIdentificacion
}

// HasReachedNotificationLimit reporta la bandera de aviso al SAT; nil cuenta como false.
func (t *DonationTracking) HasReachedNotificationLimit() bool {
	return t.LimiteAviso != nil && *t.LimiteAviso
}

// AccumulatedAmount devuelve el acumulado formateado como MXN.
func (t *DonationTracking) AccumulatedAmount() string {
	return moneda.MXN(t.Acumulacion)
}

// PeriodStartDate devuelve la fecha de inicio del periodo (dd/mm/aaaa),
// o "No definido" si el periodo no fue establecido.
func (t *DonationTracking) PeriodStartDate() string {
	if t.FechaInicioPeriodo == nil {
		return "No definido"
	}
	return fechas.Corta(*t.FechaInicioPeriodo)
}
