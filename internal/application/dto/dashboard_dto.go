package dto

// DashboardResponse contadores agregados para la página de inicio del portal.
type DashboardResponse struct {
	TotalDonativos   int64  `json:"total_donativos"`
	MontoTotal       string `json:"monto_total"` // MXN formateado
	Donantes         int64  `json:"donantes"`
	Organizaciones   int64  `json:"organizaciones"`
	AvisosPendientes int64  `json:"avisos_pendientes"` // seguimientos con límite de aviso activo
}
