// Package fechas formatea fechas con las convenciones es-MX que espera el
// portal. No hay librería de localización de fechas en el stack, así que los
// nombres de mes se mantienen en una tabla fija.
package fechas

import (
	"fmt"
	"time"
)

var meses = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Corta formatea dd/mm/aaaa: 29/11/2023.
func Corta(t time.Time) string {
	return t.Format("02/01/2006")
}

// Larga formatea con mes completo y hora: "29 de noviembre de 2023, 14:30".
func Larga(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d, %02d:%02d",
		t.Day(), meses[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
