// Package glossary builds the merged two-language term index from
// parsed glossary CSV rows.
//
// The first selected language is ingested duplicate-preserving: every
// occurrence of a repeated source term gets its own disambiguated row
// key and is flagged, never collapsed. The second language is a plain
// lookup overlay where the last occurrence of a source term wins.
package glossary

import (
	"fmt"

	"github.com/vgdata/localterm/csvfile"
	"github.com/vgdata/localterm/langmeta"
)

// Entry holds the translation data stored for one row key.
type Entry struct {
	Target  string
	Anchor  string
	Comment string
}

// PrimaryTable is the ordered, duplicate-preserving table built from
// the first language file.
type PrimaryTable struct {
	// Keys lists row keys in file order.
	Keys []string
	// Entries maps row key to its translation data.
	Entries map[string]Entry
	// BaseTerm maps a row key back to its non-disambiguated source
	// term, used to join against the secondary overlay.
	BaseTerm map[string]string
	// Duplicates contains every row key whose source term occurs more
	// than once, including the first occurrence.
	Duplicates map[string]bool
	// Endonym is the language's self-name from the file's metadata
	// row, or empty if the file declares none.
	Endonym string
}

// SecondaryTable is the collapsed source-term overlay built from the
// second language file.
type SecondaryTable struct {
	Entries map[string]Entry
	Endonym string
}

// IngestPrimary builds the ordered Language-1 table. Row keys are the
// bare source term for the first occurrence and "term#N" for the Nth;
// no two rows ever collide under the same key. Metadata rows set the
// endonym and are excluded from the table.
func IngestPrimary(rows []csvfile.Row) *PrimaryTable {
	t := &PrimaryTable{
		Entries:    make(map[string]Entry),
		BaseTerm:   make(map[string]string),
		Duplicates: make(map[string]bool),
	}
	seen := make(map[string]int)

	for _, row := range rows {
		if langmeta.IsMetadata(row.Context, row.Source, langmeta.EndonymKey) {
			t.Endonym = row.Target
			continue
		}
		seen[row.Source]++
		n := seen[row.Source]

		key := row.Source
		if n > 1 {
			key = fmt.Sprintf("%s#%d", row.Source, n)
			t.Duplicates[key] = true
			// The first occurrence is a duplicate too.
			t.Duplicates[row.Source] = true
		}

		t.Keys = append(t.Keys, key)
		t.Entries[key] = Entry{
			Target:  row.Target,
			Anchor:  row.Anchor,
			Comment: row.TranslatorComment,
		}
		t.BaseTerm[key] = row.Source
	}
	return t
}

// IngestSecondary builds the Language-2 overlay. Repeated source terms
// overwrite earlier entries; the overlay only feeds lookups, so
// duplicates need no disambiguation here.
func IngestSecondary(rows []csvfile.Row) *SecondaryTable {
	t := &SecondaryTable{Entries: make(map[string]Entry)}
	for _, row := range rows {
		if langmeta.IsMetadata(row.Context, row.Source, langmeta.EndonymKey) {
			t.Endonym = row.Target
			continue
		}
		t.Entries[row.Source] = Entry{
			Target:  row.Target,
			Anchor:  row.Anchor,
			Comment: row.TranslatorComment,
		}
	}
	return t
}
