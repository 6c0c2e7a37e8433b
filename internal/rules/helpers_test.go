package rules

import (
	"strings"
	"testing"

	"github.com/eykd/skilllint-go/internal/domain"
)

const validDescription = "Analyzes DynamoDB tables and recommends cost optimizations."

// smallConfig returns a configuration with limits small enough to reach in
// a test: 10/5 lines and 20/10 words.
func smallConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Limits = domain.Limits{HardMaxLines: 10, SoftMaxLines: 5, HardMaxWords: 20, SoftMaxWords: 10}
	return cfg
}

// skillDoc builds a SKILL.md document under a directory named name with the
// given frontmatter fields and body.
func skillDoc(name string, fields []string, body ...string) domain.Document {
	fm := append([]string{"---"}, fields...)
	fm = append(fm, "---")
	return domain.Document{
		Path:             "skills/" + name + "/SKILL.md",
		ExpectedName:     name,
		FrontmatterLines: fm,
		BodyLines:        body,
	}
}

// validDoc returns a document that satisfies every rule.
func validDoc() domain.Document {
	return skillDoc("optimize-dynamodb",
		[]string{"name: optimize-dynamodb", "description: " + validDescription},
		"# Optimize DynamoDB", "", "Run the analysis scripts.")
}

// bodyOfLines returns n body lines of one word each.
func bodyOfLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "word"
	}
	return lines
}

// bodyOfWords returns a single body line holding n words.
func bodyOfWords(n int) []string {
	return []string{strings.TrimSpace(strings.Repeat("w ", n))}
}

func assertDetails(t *testing.T, diags []domain.Diagnostic, want ...string) {
	t.Helper()
	if len(diags) != len(want) {
		t.Fatalf("got %d diagnostics, want %d: %+v", len(diags), len(want), diags)
	}
	for i, w := range want {
		if !strings.Contains(diags[i].Detail, w) {
			t.Errorf("diagnostic[%d].Detail = %q, want substring %q", i, diags[i].Detail, w)
		}
	}
}
