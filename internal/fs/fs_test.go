package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTree creates files (relative path -> content) under root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("creating dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
}

func TestOSFinder_Find(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"skills/a/SKILL.md":            "a",
		"skills/b/SKILL.md":            "b",
		"skills/b/reference.md":        "ref",
		"skills/b/script.py":           "print()",
		"README.md":                    "readme",
		".git/hooks/x.md":              "ignored",
		"node_modules/pkg/SKILL.md":    "ignored",
		"skills/c/node_modules/x/a.md": "ignored",
	})

	got, err := NewOSFinder("").Find(context.Background(), []string{root})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "README.md"),
		filepath.Join(root, "skills", "a", "SKILL.md"),
		filepath.Join(root, "skills", "b", "SKILL.md"),
		filepath.Join(root, "skills", "b", "reference.md"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() =\n%v\nwant\n%v", got, want)
	}
}

func TestOSFinder_CustomPattern(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"skills/a/SKILL.md": "a",
		"skills/a/notes.md": "n",
		"other/b/SKILL.md":  "b",
	})

	got, err := NewOSFinder("skills/**/SKILL.md").Find(context.Background(), []string{root})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	want := []string{filepath.Join(root, "skills", "a", "SKILL.md")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
}

func TestOSFinder_FileTargetsAndDedup(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"x/SKILL.md": "x", "x/data.txt": "d"})
	file := filepath.Join(root, "x", "SKILL.md")
	txt := filepath.Join(root, "x", "data.txt")

	got, err := NewOSFinder("").Find(context.Background(), []string{file, root, txt})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	want := []string{file, txt}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
}

func TestOSFinder_MissingTarget(t *testing.T) {
	_, err := NewOSFinder("").Find(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Find() error = %v, want ErrNotExist", err)
	}
}

func TestOSFinder_BadPattern(t *testing.T) {
	_, err := NewOSFinder("skills/[").Find(context.Background(), []string{t.TempDir()})
	if !errors.Is(err, ErrBadPattern) {
		t.Errorf("Find() error = %v, want ErrBadPattern", err)
	}
}

func TestOSFinder_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOSFinder("").Find(ctx, []string{t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Find() error = %v, want context.Canceled", err)
	}
}

func TestOSContentReader_ReadFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"SKILL.md": "---\nname: x\n---\n"})

	got, err := OSContentReader{}.ReadFile(context.Background(), filepath.Join(root, "SKILL.md"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "---\nname: x\n---\n" {
		t.Errorf("ReadFile() = %q", got)
	}

	if _, err := (OSContentReader{}).ReadFile(context.Background(), filepath.Join(root, "nope")); err == nil {
		t.Error("ReadFile() on missing file returned nil error")
	}
}

func TestDirNamer_ExpectedName(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"nested skill", filepath.Join(root, "skills", "pdf-tools", "SKILL.md"), "pdf-tools"},
		{"relative path", filepath.Join("skills", "optimize-dynamodb", "SKILL.md"), "optimize-dynamodb"},
		{"filesystem root", string(filepath.Separator) + "SKILL.md", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (DirNamer{}).ExpectedName(tt.path); got != tt.want {
				t.Errorf("ExpectedName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirNamer_BareFileUsesWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got := (DirNamer{}).ExpectedName("SKILL.md"); got != filepath.Base(wd) {
		t.Errorf("ExpectedName(SKILL.md) = %q, want %q", got, filepath.Base(wd))
	}
}

func TestOSWriter_CreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".skilllint.yaml")

	if err := (OSWriter{}).CreateFile(context.Background(), path, []byte("marker: SKILL.md\n")); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "marker: SKILL.md\n" {
		t.Fatalf("file content = %q, %v", data, err)
	}

	err = (OSWriter{}).CreateFile(context.Background(), path, []byte("other"))
	if !IsExists(err) {
		t.Errorf("second CreateFile() error = %v, want ErrExists", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "marker: SKILL.md\n" {
		t.Errorf("existing file was overwritten: %q", data)
	}
}
