// Package anchor composes absolute glossary wiki URLs from the anchor
// column of a glossary export.
package anchor

import "strings"

// Compose turns a raw anchor fragment into an absolute URL.
//
// An empty anchor yields an empty string; callers must suppress the link
// action. An anchor that is already a full http(s) URL is returned
// unchanged regardless of base. Anything else is joined to base with
// exactly one separating slash.
//
// Navigation, clipboard export, and note generation all go through this
// function, so its output is byte-identical across those surfaces.
func Compose(anchor, base string) string {
	if anchor == "" {
		return ""
	}
	if strings.HasPrefix(anchor, "http://") || strings.HasPrefix(anchor, "https://") {
		return anchor
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(anchor, "/")
}
