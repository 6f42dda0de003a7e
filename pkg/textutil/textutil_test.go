package textutil

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Één Overzicht", "een overzicht"},
		{"Überblick", "uberblick"},
		{"Café NAÏVE", "cafe naive"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  React vs. Vue: Q&A!  "); got != "react vs vue q a" {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestHeadingSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"exact after normalization", "Pricing Plans!", "pricing plans", 1},
		{"empty side", "", "pricing", 0},
		{"disjoint", "alpha beta", "gamma delta", 0},
		{"shared over larger set", "how to install go", "install go", 0.5},
		{"duplicate words count once", "go go go", "go", 1},
		{"three of four", "choose the right plan", "choose the right tier", 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeadingSimilarity(tt.a, tt.b); got != tt.want {
				t.Errorf("HeadingSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFirstSentence(t *testing.T) {
	if got := FirstSentence("Why teams adopt Go. They like it.", 12); got != "Why teams adopt Go" {
		t.Errorf("FirstSentence() = %q", got)
	}
	if got := FirstSentence("one two three four", 2); got != "one two" {
		t.Errorf("FirstSentence() capped = %q", got)
	}
}
