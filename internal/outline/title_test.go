package outline_test

import (
	"testing"

	"bloggen/internal/outline"
)

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1. Lesson One", "Lesson One"},
		{"Lesson Two", "Lesson Two"},
		{"Lección 3: Punteros", "Punteros"},
		{"lesson 4 - Goroutines", "Goroutines"},
		{"2.3.1) Interfaces", "Interfaces"},
		{"- Bullet Title", "Bullet Title"},
		{"– Dash   With   Runs", "Dash With Runs"},
		{"Chapter 7 Errors", "Errors"},
		{"  Plain  ", "Plain"},
	}
	for _, tc := range cases {
		if got := outline.NormalizeTitle(tc.raw); got != tc.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeTitleNeverEmpty(t *testing.T) {
	// Inputs where stripping would consume the whole heading.
	for _, raw := range []string{"1.", "42", "-", "Chapter 3", "lesson"} {
		if got := outline.NormalizeTitle(raw); got == "" {
			t.Errorf("NormalizeTitle(%q) produced empty title", raw)
		}
	}
}

func TestDocumentTitle(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/corpus/go-basics.md", "Go Basics"},
		{"intro_to_testing.md", "Intro To Testing"},
		{"notes.md", "Notes"},
	}
	for _, tc := range cases {
		if got := outline.DocumentTitle(tc.path); got != tc.want {
			t.Errorf("DocumentTitle(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
