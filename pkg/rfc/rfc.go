// Package rfc valida el Registro Federal de Contribuyentes mexicano:
// 13 caracteres para personas físicas, 12 para personas morales.
// Las validaciones son predicados puros; un RFC malformado nunca es un error,
// solo un false que el llamador decide cómo tratar.
package rfc

import (
	"regexp"
	"unicode/utf8"
)

var (
	// Persona física: 4 letras (iniciales, puede incluir Ñ o &), fecha AAMMDD, homoclave.
	fisicaPattern = regexp.MustCompile(`^[A-Z&Ñ]{4}[0-9]{6}[A-Z0-9]{3}$`)
	// Persona moral: 3 letras + fecha + homoclave.
	moralPattern = regexp.MustCompile(`^[A-Z&Ñ]{3}[0-9]{6}[A-Z0-9]{3}$`)
)

// EsFisicaValido reporta si rfc es un RFC de persona física bien formado (13 caracteres).
func EsFisicaValido(rfc string) bool {
	return utf8.RuneCountInString(rfc) == 13 && fisicaPattern.MatchString(rfc)
}

// EsMoralValido reporta si rfc es un RFC de persona moral bien formado (12 caracteres).
func EsMoralValido(rfc string) bool {
	return utf8.RuneCountInString(rfc) == 12 && moralPattern.MatchString(rfc)
}
