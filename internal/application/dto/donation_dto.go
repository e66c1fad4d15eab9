package dto

import "github.com/shopspring/decimal"

// CreateDonationRequest entrada para registrar un donativo.
// id_donante nulo registra un donativo anónimo (sin seguimiento PLD).
type CreateDonationRequest struct {
	Cantidad      decimal.Decimal `json:"cantidad" validate:"required"`
	BankAccountID *string         `json:"id_cuenta_banco"`
	DonorID       *string         `json:"id_donante"`
}

// DonationResponse proyección de un donativo para el portal: cantidad ya
// formateada en MXN y etiqueta del donante resuelta.
type DonationResponse struct {
	ID        string `json:"id"`
	Cantidad  string `json:"cantidad"` // "$1,500.00"
	Donante   string `json:"donante"`
	Fecha     string `json:"fecha"` // dd/mm/aaaa
	Anonymous bool   `json:"anonymous"`
}

// RegisterDonationResponse respuesta del registro: el donativo y, si no fue
// anónimo, el estado del seguimiento PLD tras acumular.
type RegisterDonationResponse struct {
	Donativo    DonationResponse  `json:"donativo"`
	Seguimiento *TrackingResponse `json:"seguimiento,omitempty"`
}

// DonationListResponse lista paginada de donativos.
type DonationListResponse struct {
	Items []DonationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
