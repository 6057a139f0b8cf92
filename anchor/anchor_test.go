package anchor

import (
	"strings"
	"testing"
)

func TestComposeEmpty(t *testing.T) {
	if got := Compose("", "https://wiki.example.org/base"); got != "" {
		t.Fatalf("Compose(empty) = %q, want empty", got)
	}
}

func TestComposeAbsolutePassthrough(t *testing.T) {
	for _, a := range []string{
		"https://other.example.net/glossary#term",
		"http://plain.example.net/x",
	} {
		for _, base := range []string{"", "https://wiki.example.org", "https://wiki.example.org/"} {
			if got := Compose(a, base); got != a {
				t.Fatalf("Compose(%q, %q) = %q, want unchanged", a, base, got)
			}
		}
	}
}

func TestComposeSingleSlash(t *testing.T) {
	anchors := []string{"glossary#adoption", "/glossary#adoption"}
	bases := []string{"https://wiki.example.org/wiki", "https://wiki.example.org/wiki/"}
	for _, a := range anchors {
		for _, b := range bases {
			got := Compose(a, b)
			want := "https://wiki.example.org/wiki/glossary#adoption"
			if got != want {
				t.Fatalf("Compose(%q, %q) = %q, want %q", a, b, got, want)
			}
			if strings.Contains(got, "//glossary") {
				t.Fatalf("double slash in %q", got)
			}
		}
	}
}
