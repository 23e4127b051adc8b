package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", " -",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
	"\x00", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes and asterisks become dashes, a colon becomes " -", and
// other unsafe characters are removed. The result is NFC-normalized, has its
// whitespace folded, and never ends in a dot.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = FoldSpace(fileNameReplacer.Replace(name))
	return strings.TrimRight(NFC(name), ". ")
}

// NFC returns value in Unicode normalization form C.
func NFC(value string) string {
	return norm.NFC.String(value)
}

// FoldSpace trims value and collapses every whitespace run to a single space.
func FoldSpace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
