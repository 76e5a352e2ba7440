package outline

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ordinalLabelPattern = regexp.MustCompile(`(?i)^(lecci[oó]n|lesson|tema|cap[ií]tulo|chapter|unidad|unit)\s*`)
	numberingPattern    = regexp.MustCompile(`^\s*\d+(?:[.\-]\d+){0,6}\s*[).\-–—:]*\s*`)
	leadingDashPattern  = regexp.MustCompile(`^\s*[–—-]\s*`)
	whitespaceRuns      = regexp.MustCompile(`\s{2,}`)
)

// NormalizeTitle maps a raw heading to a display title by removing leading
// ordinal labels, numbering sequences, and dash bullets, then collapsing
// internal whitespace. A non-empty input always produces a non-empty title:
// if stripping removes everything, the trimmed raw heading is returned.
func NormalizeTitle(raw string) string {
	t := strings.TrimSpace(raw)
	t = ordinalLabelPattern.ReplaceAllString(t, "")
	t = numberingPattern.ReplaceAllString(t, "")
	t = leadingDashPattern.ReplaceAllString(t, "")
	t = strings.TrimSpace(whitespaceRuns.ReplaceAllString(t, " "))
	if t == "" {
		return strings.TrimSpace(raw)
	}
	return t
}

// DocumentTitle derives a human-readable display name from a document path.
// Separator characters in the file stem become spaces and the result is
// title-cased. Used for progress output only; the raw file stem remains the
// category partition key.
func DocumentTitle(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return base
	}
	return cases.Title(language.Und).String(title)
}
