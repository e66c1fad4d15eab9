package entity

import (
	"time"

	"github.com/prevlav/cumplimiento-api/pkg/rfc"
)

// Organization representa una OSC supervisada por el órgano de cumplimiento.
// El perfil es inmutable después del registro; las correcciones se hacen
// reemplazando el registro completo.
type Organization struct {
	ID             string
	Nombre         string
	Tipo           string // ver constantes Tipo*; se tolera texto libre
	RFC            string // persona moral, 12 caracteres
	Representante  string
	Telefono       string
	Email          string
	Direccion      string
	Actividades    string
	Financiamiento string
	CreatedAt      time.Time
}

// ContactInfo proyección de solo lectura de los datos de contacto.
type ContactInfo struct {
	Representante string `json:"representante"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
	Direccion     string `json:"direccion"`
}

// IsValidRFC reporta si el RFC almacenado es un RFC de persona moral bien formado.
func (o *Organization) IsValidRFC() bool {
	return rfc.EsMoralValido(o.RFC)
}

// GetContactInfo devuelve la proyección de contacto de la organización.
func (o *Organization) GetContactInfo() ContactInfo {
	return ContactInfo{
		Representante: o.Representante,
		Telefono:      o.Telefono,
		Email:         o.Email,
		Direccion:     o.Direccion,
	}
}
