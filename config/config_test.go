package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Setenv(EnvGlossaryDir, "")
	t.Setenv(EnvURLBase, "")
}

func TestDetectDefaults(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	proj, err := Detect(root, "")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if proj.GlossaryDir != filepath.Join(root, DefaultGlossaryDir) {
		t.Fatalf("dir = %q", proj.GlossaryDir)
	}
	if proj.URLBase != "" {
		t.Fatalf("url base = %q, want empty", proj.URLBase)
	}
}

func TestDetectProjectFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	write(t, root, FileName, "glossary_dir: terms\nurl_base: https://wiki.example.org/\n")

	proj, err := Detect(root, "")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if proj.GlossaryDir != filepath.Join(root, "terms") {
		t.Fatalf("dir = %q", proj.GlossaryDir)
	}
	if proj.URLBase != "https://wiki.example.org/" {
		t.Fatalf("url base = %q", proj.URLBase)
	}
}

func TestDetectPrecedence(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	write(t, root, FileName, "glossary_dir: from-yaml\n")
	t.Setenv(EnvGlossaryDir, "from-env")

	proj, err := Detect(root, "")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if proj.GlossaryDir != filepath.Join(root, "from-env") {
		t.Fatalf("env should beat yaml, got %q", proj.GlossaryDir)
	}

	proj, err = Detect(root, "from-flag")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if proj.GlossaryDir != filepath.Join(root, "from-flag") {
		t.Fatalf("flag should beat env, got %q", proj.GlossaryDir)
	}
}

func TestDetectDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvURLBase)
	root := t.TempDir()
	write(t, root, ".env", EnvURLBase+"=https://dotenv.example.org/\n")

	proj, err := Detect(root, "")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if proj.URLBase != "https://dotenv.example.org/" {
		t.Fatalf("url base = %q, want .env value", proj.URLBase)
	}
}

func TestDetectMalformedYAML(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	write(t, root, FileName, "glossary_dir: [unclosed\n")

	if _, err := Detect(root, ""); err == nil {
		t.Fatal("expected error for malformed project file")
	}
}

func TestListLanguageFiles(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "nl.csv", "")
	write(t, dir, "da.csv", "")
	write(t, dir, "notes.txt", "")
	if err := os.Mkdir(filepath.Join(dir, "sub.csv"), 0755); err != nil {
		t.Fatal(err)
	}

	files := ListLanguageFiles(dir)
	want := []string{filepath.Join(dir, "da.csv"), filepath.Join(dir, "nl.csv")}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("files = %v, want %v", files, want)
	}

	if got := ListLanguageFiles(filepath.Join(dir, "missing")); got != nil {
		t.Fatalf("missing dir should list nothing, got %v", got)
	}
}

func TestResolveSelection(t *testing.T) {
	files := []string{"/g/da.csv", "/g/fr.csv", "/g/nl.csv"}

	i1, i2 := ResolveSelection(files, "fr.csv", "nl.csv")
	if i1 != 1 || i2 != 2 {
		t.Fatalf("selection = %d/%d, want 1/2", i1, i2)
	}

	// Stored Language-1 name gone: fall back to position 0.
	i1, i2 = ResolveSelection(files, "gone.csv", "nl.csv")
	if i1 != 0 || i2 != 2 {
		t.Fatalf("selection = %d/%d, want 0/2", i1, i2)
	}

	// Stored Language-2 name gone: fall back to Language 1's position.
	i1, i2 = ResolveSelection(files, "fr.csv", "gone.csv")
	if i1 != 1 || i2 != 1 {
		t.Fatalf("selection = %d/%d, want 1/1", i1, i2)
	}

	// Nothing stored yet.
	i1, i2 = ResolveSelection(files, "", "")
	if i1 != 0 || i2 != 0 {
		t.Fatalf("selection = %d/%d, want 0/0", i1, i2)
	}

	if i1, i2 = ResolveSelection(nil, "a", "b"); i1 != -1 || i2 != -1 {
		t.Fatalf("empty list = %d/%d, want -1/-1", i1, i2)
	}
}
