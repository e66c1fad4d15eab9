package dto

// TrackingLimits banderas de umbral PLD de un seguimiento.
type TrackingLimits struct {
	Identificacion bool `json:"identificacion"`
	Aviso          bool `json:"aviso"`
}

// TrackingResponse proyección de un seguimiento de acumulación.
type TrackingResponse struct {
	ID        string         `json:"id"`
	Acumulado string         `json:"acumulado"` // MXN formateado
	Periodo   string         `json:"periodo"`   // dd/mm/aaaa o "No definido"
	Limites   TrackingLimits `json:"limites"`
}

// TrackingListResponse lista paginada de seguimientos.
type TrackingListResponse struct {
	Items []TrackingResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
