package dto

// CreateBankAccountRequest entrada para registrar una cuenta receptora.
type CreateBankAccountRequest struct {
	CLABE     string  `json:"clabe" validate:"required,len=18"`
	NumCuenta string  `json:"num_cuenta" validate:"required"`
	Banco     string  `json:"banco"`
	DonorID   *string `json:"id_donante"`
}

// BankAccountResponse proyección enmascarada de una cuenta. CLABE y número de
// cuenta solo revelan los últimos 4 dígitos; es el único mecanismo de
// protección de PII del sistema y no debe relajarse.
type BankAccountResponse struct {
	ID     string `json:"id"`
	Banco  string `json:"banco"`  // resuelto por prefijo CLABE, con respaldo al capturado
	CLABE  string `json:"clabe"`  // "**** **** **** NNNN"
	Cuenta string `json:"cuenta"` // "**** NNNN"
}

// BankAccountListResponse lista paginada de cuentas.
type BankAccountListResponse struct {
	Items []BankAccountResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
