// Package clabe valida la CLABE interbancaria mexicana (18 dígitos) y
// resuelve el banco a partir del código de institución (3 primeros dígitos,
// catálogo Banxico).
package clabe

import "regexp"

var clabePattern = regexp.MustCompile(`^[0-9]{18}$`)

// EsValida reporta si la CLABE tiene exactamente 18 dígitos.
func EsValida(clabe string) bool {
	return clabePattern.MatchString(clabe)
}

// Catálogo parcial de códigos de institución Banxico.
// Se amplía conforme aparecen bancos receptores nuevos en el portal.
var bancos = map[string]string{
	"002": "Banamex",
	"012": "BBVA",
	"014": "Santander",
	"137": "Bancoppel",
}

// Banco devuelve el nombre del banco para el código de institución de la
// CLABE. ok es false si el prefijo no está en el catálogo.
func Banco(clabe string) (nombre string, ok bool) {
	if len(clabe) < 3 {
		return "", false
	}
	nombre, ok = bancos[clabe[:3]]
	return nombre, ok
}
