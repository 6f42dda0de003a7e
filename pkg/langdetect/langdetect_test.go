package langdetect

import "testing"

var _ Detector = (*Lingua)(nil)

func TestDominant(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  string
	}{
		{"empty", nil, ""},
		{"all unknown", []string{"", ""}, ""},
		{"majority", []string{"en", "nl", "nl", ""}, "nl"},
		{"tie goes to first seen", []string{"de", "en", "en", "de"}, "de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dominant(tt.codes); got != tt.want {
				t.Errorf("Dominant(%v) = %q, want %q", tt.codes, got, tt.want)
			}
		})
	}
}

func TestLingua_Detect(t *testing.T) {
	if testing.Short() {
		t.Skip("loads lingua language models")
	}
	l := NewLingua()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"too short", "Hello there", ""},
		{"english", "The quick brown fox jumps over the lazy dog while the farmer watches from the porch.", "en"},
		{"dutch", "De snelle bruine vos springt over de luie hond terwijl de boer vanaf de veranda toekijkt.", "nl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Detect(tt.text); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
