package entity

import (
	"time"

	"github.com/prevlav/cumplimiento-api/pkg/fechas"
)

// PreviewLength longitud por defecto del extracto del mensaje.
const PreviewLength = 100

// Announcement representa un comunicado del órgano supervisor hacia una OSC.
// Urgencia y Estado se almacenan como texto libre y se normalizan al leer:
// un valor desconocido cae al default seguro en vez de fallar, porque los
// datos llegan de una fuente externa que no controlamos.
type Announcement struct {
	ID             string
	Titulo         string
	Mensaje        string
	Remitente      string
	OrganizationID *string // nil = comunicado general
	Estado         string
	Fecha          *time.Time // fecha explícita del aviso; nil = usar CreatedAt
	Urgencia       string
	CreatedAt      time.Time

	Organization *Organization
}

// UrgencyLevel normaliza la urgencia almacenada; valores desconocidos caen a "media".
func (a *Announcement) UrgencyLevel() string {
	switch a.Urgencia {
	case UrgenciaBaja, UrgenciaMedia, UrgenciaAlta, UrgenciaUrgente:
		return a.Urgencia
	}
	return UrgenciaMedia
}

// UrgencyColor devuelve el color del portal para el nivel de urgencia.
func (a *Announcement) UrgencyColor() string {
	switch a.UrgencyLevel() {
	case UrgenciaBaja:
		return "green"
	case UrgenciaAlta:
		return "orange"
	case UrgenciaUrgente:
		return "red"
	default:
		return "yellow"
	}
}

// Status normaliza el estado almacenado; valores desconocidos caen a "enviado".
func (a *Announcement) Status() string {
	switch a.Estado {
	case AvisoEnviado, AvisoRecibido, AvisoLeido, AvisoArchivado:
		return a.Estado
	}
	return AvisoEnviado
}

// IsUrgent reporta si el nivel es exactamente "urgente" ("alta" no cuenta).
func (a *Announcement) IsUrgent() bool {
	return a.UrgencyLevel() == UrgenciaUrgente
}

// FormattedDate devuelve la fecha del aviso con mes completo y hora
// ("29 de noviembre de 2023, 14:30"); usa Fecha si existe, si no CreatedAt.
func (a *Announcement) FormattedDate() string {
	if a.Fecha != nil {
		return fechas.Larga(*a.Fecha)
	}
	return fechas.Larga(a.CreatedAt)
}

// Preview devuelve los primeros length caracteres del mensaje con "..." si
// hubo truncado; el mensaje completo si es más corto. length <= 0 usa el
// default de 100.
func (a *Announcement) Preview(length int) string {
	if length <= 0 {
		length = PreviewLength
	}
	runes := []rune(a.Mensaje)
	if len(runes) <= length {
		return a.Mensaje
	}
	return string(runes[:length]) + "..."
}
