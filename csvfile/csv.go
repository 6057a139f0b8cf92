// Package csvfile implements reading of glossary CSV exports in the
// Weblate 8-column format.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// FieldCount is the minimum number of columns a data row must carry.
// Rows with fewer columns are discarded during parsing.
const FieldCount = 8

// Row represents a single glossary term exported from the translation
// management system. Column order in the file:
// location, source, target, id, fuzzy, context, translator_comments,
// developer_comments (anchor).
type Row struct {
	// Location is the source-file reference, usually empty for glossaries.
	Location string
	// Source is the term in the source language.
	Source string
	// Target is the translated term.
	Target string
	// ID is the export row identifier.
	ID string
	// Fuzzy marks an uncertain translation.
	Fuzzy string
	// Context disambiguates identical source terms; the value "language"
	// marks metadata rows.
	Context string
	// TranslatorComment is the free-text translator note.
	TranslatorComment string
	// Anchor is the developer comment column, repurposed as a fragment
	// identifier (or full URL) into the glossary wiki.
	Anchor string
}

// ParseFile reads a glossary CSV file and returns its data rows.
// The header line is always skipped. Rows with fewer than FieldCount
// fields are discarded; extra fields are ignored. The skipped count is
// returned so callers can log it.
func ParseFile(path string) (rows []Row, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening glossary file: %w", err)
	}
	defer f.Close()

	rows, skipped, err = parse(f)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, skipped, nil
}

// parse reads CSV records from r. Quoted fields may contain embedded
// commas and newlines (standard CSV quoting).
func parse(r io.Reader) ([]Row, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []Row
	skipped := 0
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		if first {
			// Header line
			first = false
			continue
		}
		if len(record) < FieldCount {
			skipped++
			continue
		}
		rows = append(rows, Row{
			Location:          record[0],
			Source:            CleanTranslatable(record[1]),
			Target:            record[2],
			ID:                record[3],
			Fuzzy:             record[4],
			Context:           record[5],
			TranslatorComment: record[6],
			Anchor:            record[7],
		})
	}
	return rows, skipped, nil
}

// CleanTranslatable normalizes a source field that was exported as a
// gettext-style translation marker. One wrapping of _( ... ) and one
// layer of matching surrounding quotes are stripped:
//
//	_("Adoption")  ->  Adoption
//	'Birth'        ->  Birth
func CleanTranslatable(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "_(") && strings.HasSuffix(out, ")") {
		out = strings.TrimSpace(out[2 : len(out)-1])
	}
	return dequote(out)
}

// dequote removes a matching pair of single or double quotes around s.
// Unmatched or absent quotes leave the string unchanged.
func dequote(s string) string {
	if len(s) >= 2 && s[0] == s[len(s)-1] && (s[0] == '\'' || s[0] == '"') {
		return s[1 : len(s)-1]
	}
	return s
}
