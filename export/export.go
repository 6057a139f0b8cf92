// Package export produces the outbound representations of a merged
// glossary row: clipboard text, note documents, and external opens.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/vgdata/localterm/anchor"
	"github.com/vgdata/localterm/glossary"
)

// TSVLine renders a row for clipboard export: term, Language-1 target,
// Language-2 target, composed anchor URL — anchor always last. The URL
// comes from anchor.Compose, so it matches navigation byte for byte.
func TSVLine(row glossary.DisplayRow, urlBase string) string {
	return strings.Join([]string{
		row.Key,
		row.Target,
		row.Second,
		anchor.Compose(row.Anchor, urlBase),
	}, "\t")
}

// Copy places a row's TSV line on the system clipboard.
func Copy(row glossary.DisplayRow, urlBase string) error {
	return clipboard.WriteAll(TSVLine(row, urlBase))
}

// Note assembles the free-text note block for a row. Sections without
// content are omitted; the anchor URL, when present, comes last.
func Note(row glossary.DisplayRow, lang1Name, lang2Name string, urlBase string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Term: %s\n", row.Key)

	label := lang1Name
	if label == "" {
		label = "Language 1"
	}
	fmt.Fprintf(&b, "\n%s: %s\n", label, row.Target)
	if row.Comment != "" {
		fmt.Fprintf(&b, "Note: %s\n", row.Comment)
	}

	if row.Second != "" {
		label = lang2Name
		if label == "" {
			label = "Language 2"
		}
		fmt.Fprintf(&b, "\n%s: %s\n", label, row.Second)
		if row.SecondComment != "" {
			fmt.Fprintf(&b, "Note: %s\n", row.SecondComment)
		}
	}

	if row.Class == glossary.ClassDuplicate {
		b.WriteString("\nThis term occurs more than once in the glossary.\n")
	}

	if url := anchor.Compose(row.Anchor, urlBase); url != "" {
		fmt.Fprintf(&b, "\nLink: %s\n", url)
	}

	return b.String()
}

// WriteNote writes a row's note block to a temp file and returns its
// path, for handing to an external editor.
func WriteNote(row glossary.DisplayRow, lang1Name, lang2Name, urlBase string) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("localterm-%s.txt", sanitize(row.Key)))
	content := Note(row, lang1Name, lang2Name, urlBase)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing note: %w", err)
	}
	return path, nil
}

// sanitize keeps note file names shell-safe.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
