package rfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prevlav/cumplimiento-api/pkg/rfc"
)

// ──────────────────────────────────────────────────────────────────────────────
// Persona física (13 caracteres)
// ──────────────────────────────────────────────────────────────────────────────

func TestEsFisicaValido_RFCBienFormado(t *testing.T) {
	assert.True(t, rfc.EsFisicaValido("GODE561231GR8"),
		"RFC de persona física de 13 caracteres debe ser válido")
}

func TestEsFisicaValido_ConEnie(t *testing.T) {
	// La Ñ ocupa dos bytes; la longitud se cuenta en runas, no en bytes.
	assert.True(t, rfc.EsFisicaValido("ÑODE561231GR8"),
		"RFC con Ñ en las iniciales debe ser válido")
}

func TestEsFisicaValido_ConAmpersand(t *testing.T) {
	assert.True(t, rfc.EsFisicaValido("O&DE561231GR8"),
		"RFC con & en las iniciales debe ser válido")
}

func TestEsFisicaValido_Invalidos(t *testing.T) {
	casos := map[string]string{
		"vacío":              "",
		"12 caracteres":      "GOD561231GR8",
		"14 caracteres":      "GODE561231GR89",
		"minúsculas":         "gode561231gr8",
		"fecha con letras":   "GODEAB1231GR8",
		"moral (12, no 13)":  "ABC123456XY9",
		"espacios interiores": "GODE 61231GR8",
	}
	for nombre, valor := range casos {
		assert.False(t, rfc.EsFisicaValido(valor), "caso %q debe ser inválido", nombre)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Persona moral (12 caracteres)
// ──────────────────────────────────────────────────────────────────────────────

func TestEsMoralValido_RFCBienFormado(t *testing.T) {
	assert.True(t, rfc.EsMoralValido("ABC123456XY9"),
		"RFC de persona moral de 12 caracteres debe ser válido")
}

func TestEsMoralValido_ConEnie(t *testing.T) {
	assert.True(t, rfc.EsMoralValido("ÑBC123456XY9"))
}

func TestEsMoralValido_Invalidos(t *testing.T) {
	casos := map[string]string{
		"vacío":             "",
		"13 caracteres":     "GODE561231GR8",
		"11 caracteres":     "AB123456XY9",
		"minúsculas":        "abc123456xy9",
		"fecha incompleta":  "ABC12345XXY9",
	}
	for nombre, valor := range casos {
		assert.False(t, rfc.EsMoralValido(valor), "caso %q debe ser inválido", nombre)
	}
}
