package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// maxHintLength bounds the work done on oversized Accept-Language headers.
const maxHintLength = 4096

// PrimarySubtag returns the lowercase primary language subtag of the first entry
// of a negotiated hint: "es-CO,en;q=0.8" yields "es". Quality values and
// region suffixes are ignored. The subtag is taken verbatim, so legacy codes
// such as "iw" are not rewritten. Returns "" for empty or wildcard hints.
func PrimarySubtag(raw string) string {
	tag := firstTag(raw)
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// canonicalBase returns the current ISO 639 base of the first entry of a hint
// ("iw-IL" yields "he"), or "" when it cannot be parsed.
func canonicalBase(raw string) string {
	tag := firstTag(raw)
	if tag == "" {
		return ""
	}
	t, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return ""
	}
	base, conf := t.Base()
	if conf != language.Exact {
		return ""
	}
	return strings.ToLower(base.String())
}

// firstTag extracts the first language range of a hint, without its parameters.
func firstTag(raw string) string {
	if len(raw) > maxHintLength {
		raw = raw[:maxHintLength]
	}
	first, _, _ := strings.Cut(raw, ",")
	first, _, _ = strings.Cut(first, ";")
	first = strings.ToLower(strings.TrimSpace(first))
	if first == "*" {
		return ""
	}
	return first
}

// isLanguageCode reports whether s is a well-formed two-letter ISO 639-1 code.
func isLanguageCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	_, err := language.ParseBase(s)
	return err == nil
}
