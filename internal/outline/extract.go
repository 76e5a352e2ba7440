package outline

import (
	"regexp"
	"strings"
)

const (
	// PlaceholderSection is used when a ### heading appears before any # heading.
	PlaceholderSection = "No primary section"
	// PlaceholderSubsection is used when a ### heading appears before any ## heading.
	PlaceholderSubsection = "No subsection"

	categorySeparator = ", "
)

var (
	sectionPattern    = regexp.MustCompile(`^\s*#\s+(.+?)\s*$`)
	subsectionPattern = regexp.MustCompile(`^\s*##\s+(.+?)\s*$`)
	headingPattern    = regexp.MustCompile(`^\s*###\s+(.+?)\s*$`)
)

// Item is one generatable article unit.
type Item struct {
	Title      string
	Category   string
	Section    string
	Subsection string
	RawHeading string
}

// Key identifies an item for deduplication purposes.
type Key struct {
	Title    string
	Category string
}

// Key returns the dedup key for the item.
func (i Item) Key() Key {
	return Key{Title: i.Title, Category: i.Category}
}

// Extract scans a document body and returns its items in order of appearance.
// docID partitions categories between documents; it is typically the source
// file name without extension. A body with no ### headings yields a nil slice.
func Extract(body, docID string) []Item {
	section, subsection := "", ""
	var items []Item

	for _, line := range strings.Split(stripFrontMatter(body), "\n") {
		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			section, subsection = strings.TrimSpace(m[1]), ""
			continue
		}
		if m := subsectionPattern.FindStringSubmatch(line); m != nil {
			subsection = strings.TrimSpace(m[1])
			continue
		}
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		raw := strings.TrimSpace(m[1])
		sectionUse := section
		if sectionUse == "" {
			sectionUse = PlaceholderSection
		}
		subsectionUse := subsection
		if subsectionUse == "" {
			subsectionUse = PlaceholderSubsection
		}
		items = append(items, Item{
			Title:      NormalizeTitle(raw),
			Category:   strings.Join([]string{docID, sectionUse, subsectionUse}, categorySeparator),
			Section:    sectionUse,
			Subsection: subsectionUse,
			RawHeading: raw,
		})
	}

	return items
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// stripFrontMatter removes a leading --- fenced metadata block, if present.
func stripFrontMatter(body string) string {
	body = normalizeNewlines(body)
	if strings.HasPrefix(body, "---\n") {
		if _, rest, found := strings.Cut(body, "\n---\n"); found {
			return rest
		}
	}
	return body
}
