// Package langmeta recognizes language-level metadata rows in glossary
// exports and resolves display names for language files that carry none.
package langmeta

import (
	"path/filepath"
	"strings"
)

// EndonymKey is the metadata key whose row carries a language's name
// for itself. The row's target field becomes the file's display name.
const EndonymKey = "endonym"

// metadataContext marks a row as language metadata rather than a term.
const metadataContext = "language"

// IsMetadata reports whether a glossary row is a language-metadata row
// for the given key. Matching is whitespace- and case-insensitive on
// both the context and source fields.
func IsMetadata(context, source, key string) bool {
	return normalize(context) == metadataContext && normalize(source) == normalize(key)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// endonyms maps language codes to native language names, used to label
// a glossary column when its file declares no endonym row.
// Locale variants are resolved in Resolve() via normalization and base
// fallback.
var endonyms = map[string]string{
	"ca":    "Català",
	"cs":    "Čeština",
	"da":    "Dansk",
	"de":    "Deutsch",
	"el":    "Ελληνικά",
	"en":    "English",
	"en-GB": "English (UK)",
	"en-US": "English (US)",
	"es":    "Español",
	"fi":    "Suomi",
	"fr":    "Français",
	"he":    "עברית",
	"hr":    "Hrvatski",
	"hu":    "Magyar",
	"is":    "Íslenska",
	"it":    "Italiano",
	"ja":    "日本語",
	"lt":    "Lietuvių",
	"nb":    "Norsk bokmål",
	"nl":    "Nederlands",
	"nn":    "Norsk nynorsk",
	"pl":    "Polski",
	"pt":    "Português",
	"pt-BR": "Português (Brasil)",
	"pt-PT": "Português (Portugal)",
	"ru":    "Русский",
	"sk":    "Slovenčina",
	"sl":    "Slovenščina",
	"sr":    "Српски",
	"sv":    "Svenska",
	"tr":    "Türkçe",
	"uk":    "Українська",
	"zh-CN": "简体中文",
	"zh-TW": "繁體中文",
}

func canonicalize(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// Resolve returns the native name for a language code, supporting
// variants like pt_BR and pt-BR with base-language fallback. Unknown
// codes are returned unchanged.
func Resolve(lang string) string {
	if name, ok := endonyms[lang]; ok {
		return name
	}
	normalized := canonicalize(lang)
	if name, ok := endonyms[normalized]; ok {
		return name
	}
	if parts := strings.SplitN(normalized, "-", 2); len(parts) == 2 {
		if name, ok := endonyms[parts[0]]; ok {
			return name
		}
	}
	return lang
}

// DisplayName labels a glossary file's column. An endonym captured from
// the file wins; otherwise the language code embedded in the file name
// (e.g. "da.csv", "terms-pt_BR.csv") is resolved; otherwise the bare
// file name is used.
func DisplayName(endonym, fileName string) string {
	if endonym != "" {
		return endonym
	}
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	segments := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_'
	})
	candidates := []string{base}
	if n := len(segments); n >= 2 {
		// "terms-pt_BR" yields "pt-BR", "glossary-da" yields "da"
		candidates = append(candidates, segments[n-2]+"-"+segments[n-1])
	}
	if n := len(segments); n >= 1 {
		candidates = append(candidates, segments[n-1])
	}
	for _, code := range candidates {
		if name := Resolve(code); name != code {
			return name
		}
	}
	return filepath.Base(fileName)
}
