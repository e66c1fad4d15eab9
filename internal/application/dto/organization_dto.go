package dto

import "github.com/prevlav/cumplimiento-api/internal/domain/entity"

// CreateOrganizationRequest entrada del registro de una OSC.
// Un RFC malformado no rechaza el registro (se advierte en logs); el portal
// decide si exige corrección.
type CreateOrganizationRequest struct {
	Nombre         string `json:"nombre_organizacion" validate:"required,min=1,max=200"`
	Tipo           string `json:"tipo"`
	RFC            string `json:"rfc"`
	Representante  string `json:"representante"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email" validate:"omitempty,email"`
	Direccion      string `json:"direccion"`
	Actividades    string `json:"actividades_principales"`
	Financiamiento string `json:"financiamiento"`
}

// OrganizationResponse proyección de una OSC.
type OrganizationResponse struct {
	ID            string             `json:"id"`
	Nombre        string             `json:"nombre"`
	Tipo          string             `json:"tipo"`
	RFC           string             `json:"rfc"`
	Representante string             `json:"representante"`
	Contacto      entity.ContactInfo `json:"contacto"`
}

// OrganizationListResponse lista paginada de OSCs.
type OrganizationListResponse struct {
	Items []OrganizationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
