// Package frontmatter splits Markdown documents into frontmatter and body
// lines and extracts fields from the frontmatter by line pattern matching.
package frontmatter

import (
	"errors"
	"regexp"
	"strings"

	"github.com/eykd/skilllint-go/internal/domain"
)

// byteOrderMark is the UTF-8 encoding of U+FEFF some editors write first.
const byteOrderMark = "\ufeff"

// ErrUnclosed is returned when an opening delimiter has no closing partner.
var ErrUnclosed = errors.New("unclosed frontmatter")

// blockScalar matches a description key introducing a folded or literal
// block, with an optional chomping or indentation indicator.
var blockScalar = regexp.MustCompile(`^description:\s*[>|][+-]?[0-9]?[+-]?\s*$`)

// Field is a key-value pair found in a frontmatter block.
//
// Line is 1-based within the file, assuming the field lines start
// immediately after an opening delimiter on line 1.
type Field struct {
	Key   string
	Value string
	Line  int
}

// Lines splits content into lines. A leading byte order mark is dropped,
// CRLF endings are normalised and a single trailing newline does not produce
// an extra empty line.
func Lines(content string) []string {
	content = strings.TrimPrefix(content, byteOrderMark)
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// Split separates content into frontmatter lines and body lines. The
// frontmatter lines include both delimiter lines. A document that does not
// open with a delimiter has no frontmatter. A document whose frontmatter is
// never closed is returned entirely as body together with ErrUnclosed.
func Split(content string) ([]string, []string, error) {
	lines := Lines(content)
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != domain.FrontmatterDelimiter {
		return nil, lines, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == domain.FrontmatterDelimiter {
			return lines[:i+1], lines[i+1:], nil
		}
	}

	return nil, lines, ErrUnclosed
}

// fieldPattern builds the single-line key-value pattern for key.
func fieldPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(key) + `:\s*(.+)$`)
}

// Get locates a single-line "key: value" field. The value is trimmed but
// quotes are left in place. Indented lines never match.
func Get(lines []string, key string) (Field, bool) {
	re := fieldPattern(key)
	for i, line := range lines {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v := strings.TrimSpace(m[1])
		if v == "" {
			continue
		}
		return Field{Key: key, Value: v, Line: i + 2}, true
	}
	return Field{}, false
}

// Description locates the description field in either of its two forms.
// For a block scalar the continuation is the run of blank or indented lines
// that follows; it ends at the first non-blank line in column 0. The
// continuation lines are trimmed and joined with single spaces. The
// second result reports whether the block form was used. Quotes are not
// stripped.
func Description(lines []string) (Field, bool, bool) {
	for i, line := range lines {
		if !blockScalar.MatchString(line) {
			continue
		}
		var parts []string
		for _, cont := range lines[i+1:] {
			t := strings.TrimSpace(cont)
			if t == "" {
				continue
			}
			if !indented(cont) {
				break
			}
			parts = append(parts, t)
		}
		return Field{Key: "description", Value: strings.Join(parts, " "), Line: i + 2}, true, true
	}

	f, ok := Get(lines, "description")
	return f, false, ok
}

// indented reports whether line starts with a space or tab.
func indented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// StripQuotes removes one leading and one trailing quote character.
func StripQuotes(s string) string {
	if strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "'") {
		s = s[1:]
	}
	if strings.HasSuffix(s, `"`) || strings.HasSuffix(s, "'") {
		s = s[:len(s)-1]
	}
	return s
}
