// Package moneda formatea montos en pesos mexicanos con las convenciones
// de la localidad es-MX (agrupación con coma, decimal con punto).
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var esMX = message.NewPrinter(language.MustParse("es-MX"))

// MXN formatea un monto como moneda mexicana: 1500 -> "$1,500.00".
// Siempre produce dos decimales.
func MXN(monto decimal.Decimal) string {
	return esMX.Sprintf("$%v", number.Decimal(
		monto.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
