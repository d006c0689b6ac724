package tagger

import "testing"

func TestWindowClampsToText(t *testing.T) {
	text := "short text"
	got := window(text, 0, 5, 200)
	if got != "short text" {
		t.Errorf("window = %q", got)
	}
}

func TestWindowCollapsesWhitespace(t *testing.T) {
	text := "a\n\nb\t c   d"
	got := window(text, 0, len(text), 10)
	if got != "a b c d" {
		t.Errorf("window = %q", got)
	}
}

func TestWindowRespectsRuneBoundaries(t *testing.T) {
	// é is two bytes; a radius of 1 from the match would land mid-rune.
	text := "ééé match ééé"
	got := window(text, 4, 4, 1)
	for _, r := range got {
		if r == '�' {
			t.Fatalf("window split a rune: %q", got)
		}
	}
}

func TestTruncateByRunes(t *testing.T) {
	s := "ααααα"
	if got := truncate(s, 3); got != "ααα" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate(s, 10); got != s {
		t.Errorf("truncate lengthened: %q", got)
	}
}
