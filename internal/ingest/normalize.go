package ingest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes accented characters and drops the combining marks,
// leaving the base letters.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var separatorRuns = regexp.MustCompile(`[\s-]+`)

// NormalizeColumn maps arbitrary CSV header text to its canonical lookup
// key: accents stripped, lower-cased, trimmed, runs of spaces and hyphens
// joined with a single underscore. Idempotent.
func NormalizeColumn(name string) string {
	clean, _, err := transform.String(stripAccents, name)
	if err != nil {
		clean = name
	}
	clean = strings.ToLower(strings.TrimSpace(clean))
	return separatorRuns.ReplaceAllString(clean, "_")
}
