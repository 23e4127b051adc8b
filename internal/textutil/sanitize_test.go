package textutil_test

import (
	"testing"

	"moviemanager/internal/textutil"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Face/Off", "Face-Off"},
		{"Star Wars: Episode IV", "Star Wars - Episode IV"},
		{"What?  Why\"", "What Why"},
		{"  Amélie  ", "Amélie"},
		{"Se7en...", "Se7en"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := textutil.SanitizeFileName(tt.input); got != tt.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNFCComposesDecomposedInput(t *testing.T) {
	decomposed := "Ame\u0301lie"
	if got := textutil.NFC(decomposed); got != "Am\u00e9lie" {
		t.Fatalf("expected composed form, got %q", got)
	}
}

func TestFoldSpace(t *testing.T) {
	if got := textutil.FoldSpace("  The\tMatrix \n Reloaded "); got != "The Matrix Reloaded" {
		t.Fatalf("unexpected fold result %q", got)
	}
}
