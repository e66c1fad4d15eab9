package moneda_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/prevlav/cumplimiento-api/pkg/moneda"
)

func TestMXN_AgrupacionYDecimales(t *testing.T) {
	casos := map[string]string{
		"1500":     "$1,500.00",
		"0":        "$0.00",
		"999":      "$999.00",
		"1000000":  "$1,000,000.00",
		"1234.5":   "$1,234.50",
		"108475":   "$108,475.00",
	}
	for entrada, esperado := range casos {
		monto, err := decimal.NewFromString(entrada)
		assert.NoError(t, err)
		assert.Equal(t, esperado, moneda.MXN(monto), "formato de %s", entrada)
	}
}

func TestMXN_SiempreDosDecimales(t *testing.T) {
	assert.Equal(t, "$10.10", moneda.MXN(decimal.RequireFromString("10.1")),
		"un decimal debe completarse a dos")
}
