package entity

import (
	"time"

	"github.com/prevlav/cumplimiento-api/pkg/rfc"
)

// Donor representa a una persona física que aporta donativos a una OSC.
// El RFC se almacena tal cual llega; un RFC malformado no impide crear el
// registro, solo reporta false en IsValidRFC.
type Donor struct {
	ID        string
	Nombre    string
	RFC       string // persona física, 13 caracteres
	CreatedAt time.Time
}

// IsValidRFC reporta si el RFC almacenado es un RFC de persona física bien formado.
func (d *Donor) IsValidRFC() bool {
	return rfc.EsFisicaValido(d.RFC)
}

// DisplayName devuelve el nombre del donante, o el marcador genérico si está vacío.
func (d *Donor) DisplayName() string {
	if d.Nombre == "" {
		return "Donante Anónimo"
	}
	return d.Nombre
}
