package pipeline

import (
	"fmt"
	"strings"
)

const truncationMarker = "\n[... document truncated ...]"

const promptTemplate = `You are an expert technical writer covering AI applied to programming.
Write in a clear, practical tone for working programmers.

CONTEXT (full source document, use it to align terminology and focus):
"""%s"""

METADATA:
- Article category (context): %s
- Article title: %q

TASK:
Write a blog article in Markdown about the given title.
Target length: 900 to 1400 words.

Minimum structure:
1) Introduction (why it matters)
2) Main explanation with examples (include 1 short code block if it helps)
3) Common mistakes / pitfalls (at least 3)
4) Actionable checklist (5-10 points)
5) Closing "Next steps" section (2-4 bullets)

RULES:
- Do NOT include YAML front matter.
- Do NOT include invented links.
- Return ONLY the article Markdown.
`

// buildPrompt assembles the generation prompt for one article. The source
// document is cut at charBudget runes with a trailing marker; the budget is a
// hard safety cap on prompt size, not a semantic boundary.
func buildPrompt(docText, category, title string, charBudget int) string {
	return fmt.Sprintf(promptTemplate, truncateToBudget(docText, charBudget), category, title)
}

func truncateToBudget(text string, charBudget int) string {
	if charBudget <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= charBudget {
		return text
	}
	return strings.TrimRight(string(runes[:charBudget]), " \t\n") + truncationMarker
}
