package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vgdata/localterm/glossary"
)

func TestClassMarker(t *testing.T) {
	if got := classMarker(glossary.ClassNormal); got != "" {
		t.Fatalf("normal marker = %q, want empty", got)
	}
	if got := classMarker(glossary.ClassDuplicate); got != "D" {
		t.Fatalf("duplicate marker = %q", got)
	}
	if got := classMarker(glossary.ClassChanged); got != "C" {
		t.Fatalf("changed marker = %q", got)
	}
}

func TestFindRow(t *testing.T) {
	g := &glossary.Glossary{
		Rows: []glossary.DisplayRow{
			{Key: "Death", Term: "Death", Target: "Dood"},
			{Key: "Death#2", Term: "Death", Target: "Overlijden"},
			{Key: "Birth", Term: "Birth", Target: "Geboorte"},
		},
	}

	row, err := findRow(g, "Death#2")
	if err != nil {
		t.Fatalf("findRow: %v", err)
	}
	if row.Target != "Overlijden" {
		t.Fatalf("row key lookup = %+v", row)
	}

	// Base-term fallback returns the first occurrence.
	row, err = findRow(g, "Death")
	if err != nil {
		t.Fatalf("findRow: %v", err)
	}
	if row.Target != "Dood" {
		t.Fatalf("base term lookup = %+v", row)
	}

	if _, err := findRow(g, "Marriage"); err == nil {
		t.Fatal("expected error for unknown term")
	}
}

func TestFileDisplayName(t *testing.T) {
	dir := t.TempDir()

	withEndonym := filepath.Join(dir, "xx.csv")
	content := "location,source,target,id,fuzzy,context,translator_comments,developer_comments\n" +
		",Endonym,Testsprog,,,Language,,\n"
	if err := os.WriteFile(withEndonym, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if got := fileDisplayName(withEndonym); got != "Testsprog" {
		t.Fatalf("endonym display name = %q", got)
	}

	plain := filepath.Join(dir, "da.csv")
	if err := os.WriteFile(plain, []byte("h1,h2,h3,h4,h5,h6,h7,h8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := fileDisplayName(plain); got != "Dansk" {
		t.Fatalf("fallback display name = %q", got)
	}

	if got := fileDisplayName(filepath.Join(dir, "missing-nl.csv")); got != "Nederlands" {
		t.Fatalf("unreadable file display name = %q", got)
	}
}
