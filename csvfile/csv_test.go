package csvfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGlossary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "en.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFileSkipsHeaderAndShortRows(t *testing.T) {
	path := writeGlossary(t, `location,source,target,id,fuzzy,context,translator_comments,developer_comments
,Adoption,Adoptie,1,,,,glossary#adoption
short,row
,Birth,Geboorte,2,,,"note, with comma",glossary#birth
`)

	rows, skipped, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}
	if len(rows) != 2 {
		t.Fatalf("rows len = %d, want 2", len(rows))
	}
	if rows[0].Source != "Adoption" || rows[0].Target != "Adoptie" || rows[0].Anchor != "glossary#adoption" {
		t.Fatalf("row 0 = %+v", rows[0])
	}
	if rows[1].TranslatorComment != "note, with comma" {
		t.Fatalf("quoted comma field = %q", rows[1].TranslatorComment)
	}
}

func TestParseFileQuotedNewline(t *testing.T) {
	path := writeGlossary(t, "location,source,target,id,fuzzy,context,translator_comments,developer_comments\n"+
		",Death,Mort,3,,,\"line one\nline two\",glossary#death\n")

	rows, _, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows len = %d, want 1", len(rows))
	}
	if rows[0].TranslatorComment != "line one\nline two" {
		t.Fatalf("embedded newline lost: %q", rows[0].TranslatorComment)
	}
}

func TestParseFileExtraFieldsIgnored(t *testing.T) {
	path := writeGlossary(t, "h1,h2,h3,h4,h5,h6,h7,h8\n"+
		",Marriage,Mariage,4,,,comment,glossary#marriage,extra,fields\n")

	rows, skipped, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(rows) != 1 || rows[0].Anchor != "glossary#marriage" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, _, err := ParseFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCleanTranslatable(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`_("Adoption")`, "Adoption"},
		{`_('Birth')`, "Birth"},
		{`"Death"`, "Death"},
		{`'Event'`, "Event"},
		{`Marriage`, "Marriage"},
		{`  _( "Census" )  `, "Census"},
		{`"unbalanced'`, `"unbalanced'`},
		{`'`, `'`},
		{``, ``},
	}
	for _, tc := range tests {
		if got := CleanTranslatable(tc.in); got != tc.want {
			t.Fatalf("CleanTranslatable(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
