// Package pld contiene la evaluación de umbrales de la LFPIORPI para la
// recepción de donativos (actividad vulnerable, Art. 17 fracc. XIII).
//
// La acumulación por donante dentro de un periodo abierto se compara contra
// dos umbrales: el de identificación (obliga a recabar la identidad del
// donante) y el de aviso (obliga a presentar aviso ante el SAT). Las banderas
// resultantes se almacenan en el seguimiento; este paquete es la única fuente
// del cálculo.
package pld

import (
	"time"

	"github.com/shopspring/decimal"
)

// Limites umbrales vigentes en pesos (derivados de la UMA configurada).
type Limites struct {
	Identificacion decimal.Decimal
	Aviso          decimal.Decimal
}

// Evaluacion resultado de comparar una acumulación contra los límites.
type Evaluacion struct {
	RequiereIdentificacion bool
	RequiereAviso          bool
}

// Evaluar compara la acumulación contra los umbrales. Alcanzar el umbral
// exacto ya dispara la obligación (>=, no >).
func Evaluar(acumulacion decimal.Decimal, lim Limites) Evaluacion {
	return Evaluacion{
		RequiereIdentificacion: acumulacion.GreaterThanOrEqual(lim.Identificacion),
		RequiereAviso:          acumulacion.GreaterThanOrEqual(lim.Aviso),
	}
}

// PeriodoVencido reporta si un periodo iniciado en inicio ya excedió la
// ventana de acumulación de meses. Un periodo vencido se cierra y el
// siguiente donativo abre uno nuevo con acumulación en cero.
func PeriodoVencido(inicio time.Time, meses int, ahora time.Time) bool {
	if meses <= 0 {
		return false
	}
	return !ahora.Before(inicio.AddDate(0, meses, 0))
}
