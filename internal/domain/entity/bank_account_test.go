package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Enmascaramiento de PII
// ──────────────────────────────────────────────────────────────────────────────

func TestMaskedCLABE_UltimosCuatro(t *testing.T) {
	cuenta := &entity.BankAccount{CLABE: "012345678901234567"}
	assert.Equal(t, "**** **** **** 4567", cuenta.MaskedCLABE())
}

func TestMaskedAccountNumber_UltimosCuatro(t *testing.T) {
	cuenta := &entity.BankAccount{NumCuenta: "9876543210"}
	assert.Equal(t, "**** 3210", cuenta.MaskedAccountNumber())
}

func TestMasked_ValoresCortos(t *testing.T) {
	// Cuatro caracteres o menos: se muestra el valor completo tras la máscara,
	// nunca se corta de más ni se lanza error.
	cuenta := &entity.BankAccount{CLABE: "123", NumCuenta: ""}
	assert.Equal(t, "**** **** **** 123", cuenta.MaskedCLABE())
	assert.Equal(t, "**** ", cuenta.MaskedAccountNumber())
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución del banco y validación CLABE
// ──────────────────────────────────────────────────────────────────────────────

func TestBankName_PrefijoEnCatalogo(t *testing.T) {
	cuenta := &entity.BankAccount{CLABE: "012345678901234567", Banco: "Banco Capturado"}
	assert.Equal(t, "BBVA", cuenta.BankName(),
		"el catálogo tiene prioridad sobre el nombre capturado")
}

func TestBankName_PrefijoFueraDeCatalogo(t *testing.T) {
	cuenta := &entity.BankAccount{CLABE: "999345678901234567", Banco: "Banco Regional"}
	assert.Equal(t, "Banco Regional", cuenta.BankName())
}

func TestIsValidCLABE(t *testing.T) {
	assert.True(t, (&entity.BankAccount{CLABE: "014345678901234567"}).IsValidCLABE())
	assert.False(t, (&entity.BankAccount{CLABE: "12345"}).IsValidCLABE())
}
