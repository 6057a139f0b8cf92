package glossary

// Class is the display-highlight classification of a merged row.
type Class int

const (
	// ClassNormal rows render with the user-configured colors.
	ClassNormal Class = iota
	// ClassDuplicate marks row keys whose source term repeats within
	// the Language-1 file. Takes precedence over ClassChanged so a
	// duplicate is never mistaken for an ordinary divergent
	// translation.
	ClassDuplicate
	// ClassChanged marks rows whose Language-2 translation is
	// non-empty and textually different from Language-1's.
	ClassChanged
)

// String returns the marker used in plain-text listings.
func (c Class) String() string {
	switch c {
	case ClassDuplicate:
		return "duplicate"
	case ClassChanged:
		return "changed"
	default:
		return "normal"
	}
}

// Fixed highlight colors. Normal rows use the user-configured pair.
const (
	highlightFg = "#cc6600" // dark orange
	duplicateBg = "#ffffcc" // pale yellow
	changedBg   = "#ccffcc" // pale green
)

// Colors returns the foreground/background pair for a classification,
// given the user-configured colors for normal rows.
func (c Class) Colors(userFg, userBg string) (fg, bg string) {
	switch c {
	case ClassDuplicate:
		return highlightFg, duplicateBg
	case ClassChanged:
		return highlightFg, changedBg
	default:
		return userFg, userBg
	}
}

// DisplayRow is one merged line of the term index, the unit handed to
// the presentation layer.
type DisplayRow struct {
	// Key is the Language-1 row key, shown in the term column
	// ("term" or "term#N" for duplicates).
	Key string
	// Term is the base source term.
	Term string
	// Target is the Language-1 translation.
	Target string
	// Comment is the Language-1 translator comment.
	Comment string
	// Second is the Language-2 translation, empty when absent.
	Second string
	// SecondComment is the Language-2 translator comment.
	SecondComment string
	// Anchor is the raw Language-1 anchor fragment.
	Anchor string
	// Class is the highlight classification.
	Class Class
}

// Merge joins the primary table against the secondary overlay and
// produces the final ordered row sequence. Lookup uses the base source
// term, not the disambiguated row key, so every duplicate row sees the
// same Language-2 value.
func Merge(primary *PrimaryTable, secondary *SecondaryTable, trackChanges bool) []DisplayRow {
	rows := make([]DisplayRow, 0, len(primary.Keys))
	for _, key := range primary.Keys {
		entry := primary.Entries[key]
		base := primary.BaseTerm[key]

		var second Entry
		if secondary != nil {
			second = secondary.Entries[base]
		}

		class := ClassNormal
		switch {
		case primary.Duplicates[key]:
			class = ClassDuplicate
		case trackChanges && second.Target != "" && entry.Target != "" && second.Target != entry.Target:
			class = ClassChanged
		}

		rows = append(rows, DisplayRow{
			Key:           key,
			Term:          base,
			Target:        entry.Target,
			Comment:       entry.Comment,
			Second:        second.Target,
			SecondComment: second.Comment,
			Anchor:        entry.Anchor,
			Class:         class,
		})
	}
	return rows
}
