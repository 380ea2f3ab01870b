package ident

import "golang.org/x/text/unicode/norm"

// Normalize returns s in Unicode Normalization Form C.
//
// Already-normalized strings are returned without allocation. Empty strings
// normalize to the empty string.
//
// Examples:
//
//	Normalize("é")  = "é"  // combining acute -> precomposed
//	Normalize("é")        = "é"  // already NFC, no-op
func Normalize(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
