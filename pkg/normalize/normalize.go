// Package normalize pliega texto para comparaciones insensibles a mayúsculas
// y acentos (búsqueda de productos: "lacteos" debe encontrar "Lácteos").
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Descompone (NFD), elimina las marcas diacríticas y recompone (NFC).
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve s en minúsculas y sin diacríticos.
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
