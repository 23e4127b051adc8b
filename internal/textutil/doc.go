// Package textutil provides text helpers shared by the matcher and renamer:
// Unicode normalization, whitespace folding, and filename sanitization.
package textutil
