package entity

import (
	"time"

	"github.com/prevlav/cumplimiento-api/pkg/clabe"
)

// BankAccount representa una cuenta receptora de donativos.
// La CLABE y el número de cuenta son PII: cualquier proyección hacia el
// portal debe usar las versiones enmascaradas, nunca los valores crudos.
type BankAccount struct {
	ID        string
	CLABE     string // 18 dígitos
	NumCuenta string
	Banco     string  // nombre capturado; respaldo si el prefijo CLABE no está en catálogo
	DonorID   *string // nil si la cuenta no pertenece a un donante registrado
	CreatedAt time.Time
}

// IsValidCLABE reporta si la CLABE tiene exactamente 18 dígitos.
func (b *BankAccount) IsValidCLABE() bool {
	return clabe.EsValida(b.CLABE)
}

// BankName resuelve el banco por el código de institución de la CLABE;
// si el prefijo no está en el catálogo devuelve el nombre almacenado.
func (b *BankAccount) BankName() string {
	if nombre, ok := clabe.Banco(b.CLABE); ok {
		return nombre
	}
	return b.Banco
}

// MaskedCLABE devuelve la CLABE enmascarada: "**** **** **** 8901".
func (b *BankAccount) MaskedCLABE() string {
	return "**** **** **** " + lastFour(b.CLABE)
}

// MaskedAccountNumber devuelve el número de cuenta enmascarado: "**** 4321".
func (b *BankAccount) MaskedAccountNumber() string {
	return "**** " + lastFour(b.NumCuenta)
}

func lastFour(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}
