package clabe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prevlav/cumplimiento-api/pkg/clabe"
)

func TestEsValida_DieciochoDigitos(t *testing.T) {
	assert.True(t, clabe.EsValida("012345678901234567"))
}

func TestEsValida_Invalidas(t *testing.T) {
	casos := map[string]string{
		"vacía":          "",
		"17 dígitos":     "01234567890123456",
		"19 dígitos":     "0123456789012345678",
		"con letras":     "01234567890123456A",
		"con guiones":    "012-345678901234567",
	}
	for nombre, valor := range casos {
		assert.False(t, clabe.EsValida(valor), "caso %q debe ser inválido", nombre)
	}
}

func TestBanco_PrefijosDelCatalogo(t *testing.T) {
	casos := map[string]string{
		"002345678901234567": "Banamex",
		"012345678901234567": "BBVA",
		"014345678901234567": "Santander",
		"137345678901234567": "Bancoppel",
	}
	for valor, esperado := range casos {
		nombre, ok := clabe.Banco(valor)
		assert.True(t, ok, "prefijo de %q debe estar en el catálogo", valor)
		assert.Equal(t, esperado, nombre)
	}
}

func TestBanco_PrefijoDesconocido(t *testing.T) {
	_, ok := clabe.Banco("999345678901234567")
	assert.False(t, ok, "prefijo fuera del catálogo debe reportar ok=false")
}

func TestBanco_CadenaCorta(t *testing.T) {
	_, ok := clabe.Banco("01")
	assert.False(t, ok, "cadena menor a 3 caracteres no tiene prefijo")
}
