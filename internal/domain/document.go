package domain

import "strings"

// FrontmatterDelimiter opens and closes a frontmatter block.
const FrontmatterDelimiter = "---"

// Document is a parsed Markdown file ready for validation.
//
// FrontmatterLines holds the raw frontmatter block including both delimiter
// lines, or nil when the document has none. BodyLines holds everything after
// the closing delimiter. ExpectedName is the value the name field must equal;
// an empty ExpectedName disables that comparison.
type Document struct {
	Path             string
	ExpectedName     string
	FrontmatterLines []string
	BodyLines        []string
}

// HasFrontmatter reports whether the document carries a frontmatter block.
func (d Document) HasFrontmatter() bool {
	return len(d.FrontmatterLines) > 0
}

// FieldLines returns the frontmatter lines between the delimiters.
func (d Document) FieldLines() []string {
	n := len(d.FrontmatterLines)
	if n < 2 {
		return nil
	}
	inner := d.FrontmatterLines[1:]
	if strings.TrimSpace(inner[len(inner)-1]) == FrontmatterDelimiter {
		inner = inner[:len(inner)-1]
	}
	return inner
}

// TotalLines is the frontmatter line count plus the body line count.
func (d Document) TotalLines() int {
	return len(d.FrontmatterLines) + len(d.BodyLines)
}

// WordCount counts whitespace-separated tokens in the body.
func (d Document) WordCount() int {
	return len(strings.Fields(strings.Join(d.BodyLines, "\n")))
}
