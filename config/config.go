// Package config resolves where glossary CSV files live and which wiki
// base URL anchors point into.
//
// Resolution precedence for the glossary directory:
//
//	--dir flag > LOCALTERM_GLOSSARY_DIR > .localterm.yaml > ./glossary
//
// A .env file in the project root is loaded first, so either variable
// can live there instead of the shell environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file.
const FileName = ".localterm.yaml"

// DefaultGlossaryDir is used when nothing else names a directory.
const DefaultGlossaryDir = "glossary"

// Env variable names.
const (
	EnvGlossaryDir = "LOCALTERM_GLOSSARY_DIR"
	EnvURLBase     = "LOCALTERM_URL_BASE"
)

// Project holds the resolved glossary location and wiki defaults.
type Project struct {
	// GlossaryDir is the directory scanned for language files.
	GlossaryDir string
	// URLBase is the default wiki base URL. Once the user saves
	// settings, the persisted value wins over this.
	URLBase string
}

// projectFile is the .localterm.yaml schema.
type projectFile struct {
	GlossaryDir string `yaml:"glossary_dir,omitempty"`
	URLBase     string `yaml:"url_base,omitempty"`
}

// Detect resolves the project configuration for rootDir. dirFlag is
// the --dir flag value; empty means unset. An absent .localterm.yaml
// is not an error, a malformed one is.
func Detect(rootDir, dirFlag string) (*Project, error) {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load(filepath.Join(rootDir, ".env"))

	var pf projectFile
	path := filepath.Join(rootDir, FileName)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dir := dirFlag
	if dir == "" {
		dir = os.Getenv(EnvGlossaryDir)
	}
	if dir == "" {
		dir = pf.GlossaryDir
	}
	if dir == "" {
		dir = DefaultGlossaryDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(rootDir, dir)
	}

	urlBase := os.Getenv(EnvURLBase)
	if urlBase == "" {
		urlBase = pf.URLBase
	}

	return &Project{GlossaryDir: dir, URLBase: urlBase}, nil
}

// ListLanguageFiles returns the candidate glossary files in dir: every
// *.csv file, sorted by name. A missing directory yields an empty list.
func ListLanguageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files
}

// ResolveSelection maps the stored language file names back to current
// list positions. Language 1 falls back to position 0 when its stored
// name is gone; Language 2 falls back to Language 1's position (which
// means "no second language selected").
func ResolveSelection(files []string, lang1Name, lang2Name string) (i1, i2 int) {
	if len(files) == 0 {
		return -1, -1
	}
	i1 = indexByName(files, lang1Name, 0)
	i2 = indexByName(files, lang2Name, i1)
	return i1, i2
}

func indexByName(files []string, name string, fallback int) int {
	if name == "" {
		return fallback
	}
	for i, f := range files {
		if filepath.Base(f) == name {
			return i
		}
	}
	return fallback
}
