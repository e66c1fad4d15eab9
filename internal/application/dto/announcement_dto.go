package dto

import "time"

// CreateAnnouncementRequest entrada para crear un aviso (comunicado).
// Urgencia y estado fuera del vocabulario no se rechazan: el modelo los
// normaliza al leer.
type CreateAnnouncementRequest struct {
	Titulo         string     `json:"titulo" validate:"required,min=1,max=200"`
	Mensaje        string     `json:"mensaje" validate:"required"`
	Remitente      string     `json:"remitente"`
	OrganizationID *string    `json:"id_osc"`
	Estado         string     `json:"estado"`
	Fecha          *time.Time `json:"fecha"`
	Urgencia       string     `json:"urgencia"`
}

// UpdateAnnouncementEstadoRequest transición de estado dirigida por el portal.
type UpdateAnnouncementEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=enviado recibido leido archivado"`
}

// AnnouncementResponse proyección de un aviso con urgencia/estado ya
// normalizados, fecha formateada y extracto del mensaje.
type AnnouncementResponse struct {
	ID        string `json:"id"`
	Titulo    string `json:"titulo"`
	Mensaje   string `json:"mensaje"`
	Remitente string `json:"remitente"`
	Urgencia  string `json:"urgencia"`
	Fecha     string `json:"fecha"`
	Estado    string `json:"estado"`
	Preview   string `json:"preview"`
}

// AnnouncementListResponse lista paginada de avisos.
type AnnouncementListResponse struct {
	Items []AnnouncementResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
