package tagger

import (
	"strings"
	"unicode/utf8"
)

// window cuts a radius of bytes around [start,end) out of text, widened to
// rune boundaries, and collapses all internal whitespace to single spaces.
// Windows are character-offset based, not sentence based: they may start
// or stop mid-word and may span unrelated sentences.
func window(text string, start, end, radius int) string {
	s := start - radius
	if s < 0 {
		s = 0
	}
	e := end + radius
	if e > len(text) {
		e = len(text)
	}
	for s > 0 && !utf8.RuneStart(text[s]) {
		s--
	}
	for e < len(text) && !utf8.RuneStart(text[e]) {
		e++
	}
	return collapseSpace(text[s:e])
}

// collapseSpace trims and joins all whitespace runs into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate caps a string at max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
