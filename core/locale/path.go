package locale

import "strings"

// SplitPath splits a URL path into its non-empty segments.
// Query strings and fragments must already be removed.
func SplitPath(p string) []string {
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, s := range parts {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// JoinPath builds /{code}/{remainder...}. An empty remainder yields /{code}.
func JoinPath(code Code, remainder []string) string {
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(string(code))
	for _, s := range remainder {
		b.WriteByte('/')
		b.WriteString(s)
	}
	return b.String()
}

// NormalizeBasePath returns base with a leading slash and without a trailing one.
// The root base path is returned as "".
func NormalizeBasePath(base string) string {
	base = strings.TrimSpace(base)
	base = strings.Trim(base, "/")
	if base == "" {
		return ""
	}
	return "/" + base
}

// TrimBasePath removes base from p. ok is false when p lies outside base.
func TrimBasePath(base, p string) (string, bool) {
	base = NormalizeBasePath(base)
	if base == "" {
		return p, true
	}
	if p == base {
		return "/", true
	}
	if strings.HasPrefix(p, base+"/") {
		return p[len(base):], true
	}
	return p, false
}

// BaseHref returns the document base href for a locale under base: "/Base/es/".
func BaseHref(base string, code Code) string {
	return NormalizeBasePath(base) + "/" + string(code) + "/"
}
