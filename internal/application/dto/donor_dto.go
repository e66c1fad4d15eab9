package dto

// CreateDonorRequest entrada para registrar un donante. Los nombres de campo
// replican el esquema externo del portal (nombre_varchar viene así de origen).
type CreateDonorRequest struct {
	Nombre string `json:"nombre_varchar" validate:"required,min=1,max=200"`
	RFC    string `json:"rfc"`
}

// DonorResponse proyección de un donante. El RFC se expone verbatim
// (a diferencia de las cuentas bancarias, no se enmascara).
type DonorResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	RFC    string `json:"rfc"`
}

// DonorListResponse lista paginada de donantes.
type DonorListResponse struct {
	Items []DonorResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
