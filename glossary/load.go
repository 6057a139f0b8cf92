package glossary

import (
	"github.com/vgdata/localterm/csvfile"
	"github.com/vgdata/localterm/langmeta"
)

// Glossary is a fully loaded and merged term index. A reload builds a
// new Glossary from scratch; there is no incremental update path.
type Glossary struct {
	Rows []DisplayRow

	// Lang1File and Lang2File are the paths the tables were built
	// from. Lang2File is empty when no second language is selected.
	Lang1File string
	Lang2File string

	// Lang1Name and Lang2Name label the output columns (endonym from
	// the file, else derived from the file name).
	Lang1Name string
	Lang2Name string

	// Skipped1 and Skipped2 count malformed rows discarded per file.
	Skipped1 int
	Skipped2 int

	// SecondaryErr records a failed read of the second file. The
	// glossary is still usable with an empty Language-2 column;
	// callers log this instead of failing.
	SecondaryErr error
}

// Load reads, ingests, and merges the selected language files. All
// tables are built in scratch storage and returned only on success, so
// a failed reload never replaces a previously displayed glossary with
// a half-populated one.
//
// A missing or unreadable second file degrades to an empty overlay
// (recorded in SecondaryErr). A second path equal to the first, or an
// empty second path, means no second language is selected.
func Load(path1, path2 string, trackChanges bool) (*Glossary, error) {
	rows1, skipped1, err := csvfile.ParseFile(path1)
	if err != nil {
		return nil, err
	}
	primary := IngestPrimary(rows1)

	g := &Glossary{
		Lang1File: path1,
		Skipped1:  skipped1,
		Lang1Name: langmeta.DisplayName(primary.Endonym, path1),
	}

	secondary := &SecondaryTable{Entries: make(map[string]Entry)}
	if path2 != "" && path2 != path1 {
		rows2, skipped2, err2 := csvfile.ParseFile(path2)
		if err2 != nil {
			g.SecondaryErr = err2
		} else {
			secondary = IngestSecondary(rows2)
			g.Lang2File = path2
			g.Skipped2 = skipped2
			g.Lang2Name = langmeta.DisplayName(secondary.Endonym, path2)
		}
	}

	g.Rows = Merge(primary, secondary, trackChanges)
	return g, nil
}
