package usecase

import (
	"regexp"
	"strings"
)

var (
	boldMarkup = regexp.MustCompile(`\*\*(.*?)\*\*`)
	listMarker = regexp.MustCompile(`(?m)^[ \t]*[\*\-][ \t]*`)
	colonBreak = regexp.MustCompile(`:[ \t]*([A-Z])`)
	blankRuns  = regexp.MustCompile(`\n{2,}`)
)

// NormalizeAnswer rewrites generated markdown into the house style: bold
// markup stripped, list markers unified to a single bullet glyph, a line break
// forced after a colon that introduces a capitalized clause, and runs of blank
// lines collapsed to exactly one. Pure and idempotent: a second application
// returns its input unchanged.
func NormalizeAnswer(text string) string {
	out := boldMarkup.ReplaceAllString(text, "$1")
	out = listMarker.ReplaceAllString(out, "• ")
	// Only horizontal whitespace matches between the colon and the capital,
	// so text already broken across lines is left alone.
	out = colonBreak.ReplaceAllString(out, ":\n$1")
	out = blankRuns.ReplaceAllString(strings.TrimSpace(out), "\n\n")
	return strings.TrimSpace(out)
}
