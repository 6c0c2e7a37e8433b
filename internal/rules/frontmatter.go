package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/eykd/skilllint-go/internal/domain"
	"github.com/eykd/skilllint-go/internal/frontmatter"
	"github.com/eykd/skilllint-go/internal/slug"
)

// Field constraints.
const (
	MaxNameLength        = 64
	MinDescriptionLength = 20
	MaxDescriptionLength = 1024
)

var (
	kebabCase = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	xmlTag    = regexp.MustCompile(`<[^>]+>`)
)

// FrontmatterRule enforces the name and description schema.
type FrontmatterRule struct {
	cfg      domain.Config
	reserved []reservedWord
}

type reservedWord struct {
	word string
	re   *regexp.Regexp
}

// NewFrontmatterRule creates a FrontmatterRule for cfg, compiling a
// case-insensitive whole-word matcher for each reserved word.
func NewFrontmatterRule(cfg domain.Config) *FrontmatterRule {
	r := &FrontmatterRule{cfg: cfg}
	for _, w := range cfg.ReservedWords {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		r.reserved = append(r.reserved, reservedWord{
			word: w,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`),
		})
	}
	return r
}

// ID implements Rule.
func (r *FrontmatterRule) ID() string { return domain.RuleFrontmatter }

// Summary implements Rule.
func (r *FrontmatterRule) Summary() string {
	return fmt.Sprintf("%s frontmatter must declare a kebab-case name (max %d chars) matching its directory and a description of %d-%d chars",
		r.cfg.Marker, MaxNameLength, MinDescriptionLength, MaxDescriptionLength)
}

// Check validates the frontmatter block. A missing block yields a single
// diagnostic; otherwise every name check and every description check runs.
func (r *FrontmatterRule) Check(doc domain.Document) []domain.Diagnostic {
	if !r.cfg.Applies(doc.Path) {
		return nil
	}

	if !doc.HasFrontmatter() {
		return []domain.Diagnostic{errorAt(r.ID(), 1, "frontmatter", fmt.Sprintf(
			"Missing frontmatter. %s must start with a --- block declaring name and description", r.cfg.Marker))}
	}

	lines := doc.FieldLines()
	var diags []domain.Diagnostic
	diags = append(diags, r.checkName(lines, doc.ExpectedName)...)
	diags = append(diags, r.checkDescription(lines)...)
	return diags
}

func (r *FrontmatterRule) checkName(lines []string, expected string) []domain.Diagnostic {
	field, ok := frontmatter.Get(lines, "name")
	if !ok {
		return []domain.Diagnostic{errorAt(r.ID(), 1, "name", "Missing required field: name")}
	}

	name := frontmatter.StripQuotes(field.Value)
	ctx := "name: " + name
	var diags []domain.Diagnostic

	if !kebabCase.MatchString(name) {
		detail := fmt.Sprintf("name %q must be kebab-case: lowercase letters, digits and hyphens, starting with a letter", name)
		if s := slug.Kebab(name); s != "" && s != name {
			detail += fmt.Sprintf(" (try %q)", s)
		}
		diags = append(diags, errorAt(r.ID(), field.Line, ctx, detail))
	}

	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		diags = append(diags, errorAt(r.ID(), field.Line, ctx, fmt.Sprintf(
			"name is %d characters, exceeding the maximum of %d", n, MaxNameLength)))
	}

	var hits []string
	for _, rw := range r.reserved {
		if rw.re.MatchString(name) {
			hits = append(hits, rw.word)
		}
	}
	if len(hits) > 0 {
		diags = append(diags, errorAt(r.ID(), field.Line, ctx, fmt.Sprintf(
			"name %q contains reserved word %s", name, quoteList(hits))))
	}

	if strings.Contains(name, "--") {
		diags = append(diags, errorAt(r.ID(), field.Line, ctx, fmt.Sprintf(
			"name %q contains consecutive hyphens", name)))
	}

	if xmlTag.MatchString(name) {
		diags = append(diags, errorAt(r.ID(), field.Line, ctx, fmt.Sprintf(
			"name %q contains an XML/HTML tag", name)))
	}

	if expected != "" && name != expected {
		diags = append(diags, errorAt(r.ID(), field.Line, ctx, fmt.Sprintf(
			"name %q does not match its directory name %q", name, expected)))
	}

	return diags
}

func (r *FrontmatterRule) checkDescription(lines []string) []domain.Diagnostic {
	field, block, ok := frontmatter.Description(lines)
	if !ok {
		return []domain.Diagnostic{errorAt(r.ID(), 1, "description", "Missing required field: description")}
	}

	desc := strings.TrimSpace(field.Value)
	if !block {
		desc = frontmatter.StripQuotes(desc)
	}
	n := utf8.RuneCountInString(desc)
	ctx := fmt.Sprintf("description: %d chars", n)
	var diags []domain.Diagnostic

	if n < MinDescriptionLength {
		diags = append(diags, errorAt(r.ID(), field.Line, ctx, fmt.Sprintf(
			"description is too short (%d characters, minimum %d)", n, MinDescriptionLength)))
	}

	if n > MaxDescriptionLength {
		diags = append(diags, errorAt(r.ID(), field.Line, ctx, fmt.Sprintf(
			"description is too long (%d characters, maximum %d)", n, MaxDescriptionLength)))
	}

	if xmlTag.MatchString(desc) {
		diags = append(diags, errorAt(r.ID(), field.Line, ctx, "description contains an XML/HTML tag"))
	}

	return diags
}

func quoteList(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	return strings.Join(quoted, ", ")
}
