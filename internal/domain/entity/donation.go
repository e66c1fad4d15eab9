package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/prevlav/cumplimiento-api/pkg/moneda"
)

// Donation representa un donativo individual hacia una cuenta receptora.
// Donor y BankAccount son referencias opcionales que el llamador adjunta
// manualmente con WithRelations; el modelo nunca las resuelve por sí mismo
// ni valida que coincidan con los IDs.
type Donation struct {
	ID            string
	Cantidad      decimal.Decimal // pesos mexicanos
	BankAccountID *string
	DonorID       *string // nil = donativo anónimo
	CreatedAt     time.Time

	Donor       *Donor
	BankAccount *BankAccount
}

// FormattedAmount devuelve la cantidad formateada como MXN: "$1,500.00".
func (d *Donation) FormattedAmount() string {
	return moneda.MXN(d.Cantidad)
}

// IsAnonymous reporta si el donativo no tiene donante asociado.
func (d *Donation) IsAnonymous() bool {
	return d.DonorID == nil || *d.DonorID == ""
}

// DonorInfo devuelve la etiqueta del donante para el portal:
// "Donación Anónima" si no hay donante, el nombre si la relación fue
// adjuntada, o "Donante" como respaldo genérico.
func (d *Donation) DonorInfo() string {
	if d.IsAnonymous() {
		return "Donación Anónima"
	}
	if d.Donor != nil {
		return d.Donor.DisplayName()
	}
	return "Donante"
}

// WithRelations adjunta las referencias opcionales y devuelve el mismo donativo
// (estilo builder). No persiste nada.
func (d *Donation) WithRelations(donor *Donor, cuenta *BankAccount) *Donation {
	d.Donor = donor
	d.BankAccount = cuenta
	return d
}
