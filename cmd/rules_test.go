package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// mockRulesRunner is a test double for RulesRunner.
type mockRulesRunner struct {
	result *RulesResult
	err    error
}

func (m *mockRulesRunner) Rules(ctx context.Context) (*RulesResult, error) {
	return m.result, m.err
}

func sampleRules() *RulesResult {
	return &RulesResult{
		Rules: []RuleInfo{
			{ID: "skill-length", Summary: "size limits"},
			{ID: "skill-frontmatter", Summary: "name and description"},
		},
		Limits:        LimitsInfo{HardMaxLines: 500, SoftMaxLines: 300, HardMaxWords: 8000, SoftMaxWords: 5000},
		ReservedWords: []string{"anthropic", "claude"},
		Marker:        "SKILL.md",
	}
}

func runRules(t *testing.T, runner RulesRunner, args ...string) (string, error) {
	t.Helper()
	cmd := NewRulesCmd(runner)
	cmd.SetArgs(append([]string{}, args...))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.Execute()
	return buf.String(), err
}

func TestRulesCmd_HumanOutput(t *testing.T) {
	out, err := runRules(t, &mockRulesRunner{result: sampleRules()})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"skill-length\n  size limits",
		"skill-frontmatter\n  name and description",
		"marker: SKILL.md",
		"lines: soft 300, hard 500",
		"words: soft 5000, hard 8000",
		"reserved words: anthropic, claude",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, out)
		}
	}
}

func TestRulesCmd_NoReservedWords(t *testing.T) {
	r := sampleRules()
	r.ReservedWords = nil

	out, err := runRules(t, &mockRulesRunner{result: r})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "reserved words: (none)") {
		t.Errorf("expected '(none)', got:\n%s", out)
	}
}

func TestRulesCmd_JSON(t *testing.T) {
	r := sampleRules()
	r.ReservedWords = nil

	out, err := runRules(t, &mockRulesRunner{result: r}, "--json")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got RulesResult
	if jsonErr := json.Unmarshal([]byte(out), &got); jsonErr != nil {
		t.Fatalf("invalid JSON: %v\nraw: %s", jsonErr, out)
	}
	if len(got.Rules) != 2 || got.Rules[0].ID != "skill-length" {
		t.Errorf("rules = %+v", got.Rules)
	}
	if got.Limits.HardMaxLines != 500 {
		t.Errorf("hard_max_lines = %d, want 500", got.Limits.HardMaxLines)
	}
	if !strings.Contains(out, `"reserved_words": []`) {
		t.Errorf("expected reserved_words to encode as [], got:\n%s", out)
	}
}

func TestRulesCmd_RunnerError(t *testing.T) {
	boom := errors.New("invalid config")

	_, err := runRules(t, &mockRulesRunner{err: boom})

	var ctxErr *ContextError
	if !errors.As(err, &ctxErr) || ctxErr.Op != "rules" {
		t.Fatalf("expected rules ContextError, got %T: %v", err, err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}
