package langmeta

import "testing"

func TestIsMetadata(t *testing.T) {
	tests := []struct {
		context, source, key string
		want                 bool
	}{
		{"language", "endonym", EndonymKey, true},
		{"Language", "Endonym", EndonymKey, true},
		{"  LANGUAGE ", " ENDONYM ", EndonymKey, true},
		{"language", "adoption", EndonymKey, false},
		{"", "endonym", EndonymKey, false},
		{"glossary", "endonym", EndonymKey, false},
	}
	for _, tc := range tests {
		if got := IsMetadata(tc.context, tc.source, tc.key); got != tc.want {
			t.Fatalf("IsMetadata(%q, %q, %q) = %v, want %v", tc.context, tc.source, tc.key, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("da"); got != "Dansk" {
		t.Fatalf("Resolve(da) = %q", got)
	}
	if got := Resolve("pt_BR"); got != "Português (Brasil)" {
		t.Fatalf("Resolve(pt_BR) = %q", got)
	}
	if got := Resolve("fr-XX"); got != "Français" {
		t.Fatalf("Resolve(fr-XX) should fall back to base, got %q", got)
	}
	if got := Resolve("zz"); got != "zz" {
		t.Fatalf("Resolve(zz) = %q, want passthrough", got)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		endonym, file, want string
	}{
		{"Dansk", "whatever.csv", "Dansk"},
		{"", "da.csv", "Dansk"},
		{"", "/some/dir/nl.csv", "Nederlands"},
		{"", "terms-pt_BR.csv", "Português (Brasil)"},
		{"", "glossary-da.csv", "Dansk"},
		{"", "notalang.csv", "notalang.csv"},
	}
	for _, tc := range tests {
		if got := DisplayName(tc.endonym, tc.file); got != tc.want {
			t.Fatalf("DisplayName(%q, %q) = %q, want %q", tc.endonym, tc.file, got, tc.want)
		}
	}
}
