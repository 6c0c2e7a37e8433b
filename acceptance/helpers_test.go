package acceptance_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runSkl executes the skl binary and returns stdout, stderr, and exit code.
func runSkl(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(sklBinary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run skl: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// runSklExpect runs skl expecting the given exit code and returns stdout.
func runSklExpect(t *testing.T, dir string, want int, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runSkl(t, dir, args...)
	if exitCode != want {
		t.Fatalf("expected exit %d, got %d\nargs: %v\nstdout: %s\nstderr: %s", want, exitCode, args, stdout, stderr)
	}
	return stdout
}

// writeFile writes content to rel under dir, creating parents.
func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// skill renders a SKILL.md with the given frontmatter fields and body.
func skill(fields []string, body ...string) string {
	var b strings.Builder
	b.WriteString("---\n")
	for _, f := range fields {
		b.WriteString(f + "\n")
	}
	b.WriteString("---\n")
	for _, l := range body {
		b.WriteString(l + "\n")
	}
	return b.String()
}

// repeatLines returns n copies of line.
func repeatLines(n int, line string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = line
	}
	return out
}

// checkJSON is the shape of skl check --json.
type checkJSON struct {
	Findings []struct {
		Path     string `json:"path"`
		Line     int    `json:"line"`
		Severity string `json:"severity"`
		Rule     string `json:"rule"`
		Message  string `json:"message"`
		Context  string `json:"context"`
	} `json:"findings"`
	Summary struct {
		Errors    int `json:"errors"`
		Warnings  int `json:"warnings"`
		Documents int `json:"documents"`
		Checked   int `json:"checked"`
	} `json:"summary"`
}

// checkJSONResult runs skl check --json and parses the result.
func checkJSONResult(t *testing.T, dir string, wantExit int, args ...string) checkJSON {
	t.Helper()
	stdout := runSklExpect(t, dir, wantExit, append([]string{"check", "--json"}, args...)...)
	var out checkJSON
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("failed to parse check JSON: %v\noutput: %s", err, stdout)
	}
	return out
}
