package outline_test

import (
	"reflect"
	"testing"

	"bloggen/internal/outline"
)

func TestExtractUsesHeadingContext(t *testing.T) {
	body := `# Intro

## Basics

### 1. Lesson One

some prose

### Lesson Two
`
	items := outline.Extract(body, "doc")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	want := []outline.Item{
		{Title: "Lesson One", Category: "doc, Intro, Basics", Section: "Intro", Subsection: "Basics", RawHeading: "1. Lesson One"},
		{Title: "Lesson Two", Category: "doc, Intro, Basics", Section: "Intro", Subsection: "Basics", RawHeading: "Lesson Two"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected items:\n got %#v\nwant %#v", items, want)
	}
}

func TestExtractSubstitutesPlaceholders(t *testing.T) {
	items := outline.Extract("### Orphan Heading\n", "doc")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Section != outline.PlaceholderSection {
		t.Fatalf("unexpected section: %q", items[0].Section)
	}
	if items[0].Subsection != outline.PlaceholderSubsection {
		t.Fatalf("unexpected subsection: %q", items[0].Subsection)
	}
	if items[0].Category != "doc, No primary section, No subsection" {
		t.Fatalf("unexpected category: %q", items[0].Category)
	}
}

func TestExtractResetsSubsectionOnNewSection(t *testing.T) {
	body := `# One
## Alpha
### First
# Two
### Second
`
	items := outline.Extract(body, "doc")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Category != "doc, One, Alpha" {
		t.Fatalf("unexpected first category: %q", items[0].Category)
	}
	// Entering "# Two" must clear the remembered "## Alpha".
	if items[1].Category != "doc, Two, No subsection" {
		t.Fatalf("unexpected second category: %q", items[1].Category)
	}
}

func TestExtractStripsFrontMatter(t *testing.T) {
	body := "---\ntitle: ignored\n### Not A Heading\n---\n# Real\n## Sub\n### Item\n"
	items := outline.Extract(body, "doc")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "Item" {
		t.Fatalf("unexpected title: %q", items[0].Title)
	}
}

func TestExtractHandlesCRLF(t *testing.T) {
	body := "# A\r\n## B\r\n### C\r\n"
	items := outline.Extract(body, "doc")
	if len(items) != 1 || items[0].Category != "doc, A, B" {
		t.Fatalf("unexpected items: %#v", items)
	}
}

func TestExtractNoHeadingsYieldsEmpty(t *testing.T) {
	if items := outline.Extract("just prose\n\n## only a subsection\n", "doc"); len(items) != 0 {
		t.Fatalf("expected no items, got %#v", items)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	body := "# A\n### one\n## B\n### 2) two\n### - three\n"
	first := outline.Extract(body, "doc")
	for i := 0; i < 5; i++ {
		if again := outline.Extract(body, "doc"); !reflect.DeepEqual(first, again) {
			t.Fatalf("extraction not deterministic:\n got %#v\nwant %#v", again, first)
		}
	}
}
