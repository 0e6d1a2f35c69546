package locale

import (
	"fmt"
	"strings"
)

// Reason explains why a resolution does or does not need a redirect.
type Reason string

const (
	// ReasonCanonical means the path already carries exactly one locale in canonical case.
	ReasonCanonical Reason = "canonical"
	// ReasonMissingPrefix means no locale segment leads the path.
	ReasonMissingPrefix Reason = "missing_prefix"
	// ReasonCaseMismatch means a single locale segment is present in the wrong case.
	ReasonCaseMismatch Reason = "case_mismatch"
	// ReasonStackedPrefix means two or more locale segments lead the path.
	ReasonStackedPrefix Reason = "stacked_prefix"
	// ReasonMalformedSlashes means the locale is canonical but the path has empty
	// segments ("//es//about") or lacks its leading slash.
	ReasonMalformedSlashes Reason = "malformed_slashes"
)

// Source tells where the resolved locale came from.
type Source string

const (
	SourcePath    Source = "path"
	SourceStored  Source = "stored"
	SourceHint    Source = "hint"
	SourceDefault Source = "default"
)

// UnknownPrefixPolicy decides what happens to a leading segment that is a real
// language code but is not enabled in the catalog.
type UnknownPrefixPolicy int

const (
	// PolicyKeep leaves the segment in the remainder: /fr/about -> /es/fr/about.
	PolicyKeep UnknownPrefixPolicy = iota
	// PolicyDrop removes the segment: /fr/about -> /es/about.
	PolicyDrop
)

// ParseUnknownPrefixPolicy parses "keep" or "drop".
func ParseUnknownPrefixPolicy(s string) (UnknownPrefixPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return PolicyKeep, nil
	case "drop":
		return PolicyDrop, nil
	default:
		return PolicyKeep, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Resolution is the outcome of resolving a path.
type Resolution struct {
	Locale         Code
	Remainder      []string
	RedirectNeeded bool
	Reason         Reason
	Source         Source
}

// Path returns the canonical path for the resolution, without query or fragment.
func (r Resolution) Path() string {
	return JoinPath(r.Locale, r.Remainder)
}

// Resolver computes canonical locale paths. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	catalog *Catalog
	unknown UnknownPrefixPolicy
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithUnknownPrefixPolicy sets how unsupported language-code prefixes are treated.
func WithUnknownPrefixPolicy(p UnknownPrefixPolicy) ResolverOption {
	return func(r *Resolver) {
		r.unknown = p
	}
}

// NewResolver creates a resolver bound to the catalog. Panics if catalog is nil.
func NewResolver(c *Catalog, opts ...ResolverOption) *Resolver {
	if c == nil {
		panic("locale: resolver requires a catalog")
	}
	r := &Resolver{catalog: c}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the catalog the resolver is bound to.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// Resolve decides the canonical locale and path for the given segments.
// stored is the persisted preference and hint the negotiated language; either may be empty.
//
// Stacked prefixes resolve to the last consecutive locale segment:
// [es en opinions] yields en with remainder [opinions].
func (r *Resolver) Resolve(segments []string, stored, hint string) Resolution {
	k, last, remainder := r.Strip(segments)

	switch {
	case k == 0:
		code, src := r.Fallback(stored, hint)
		if r.unknown == PolicyDrop && len(remainder) > 0 && isLanguageCode(remainder[0]) {
			remainder = remainder[1:]
		}
		return Resolution{
			Locale:         code,
			Remainder:      remainder,
			RedirectNeeded: true,
			Reason:         ReasonMissingPrefix,
			Source:         src,
		}
	case k == 1 && segments[0] == string(last):
		return Resolution{
			Locale:    last,
			Remainder: remainder,
			Reason:    ReasonCanonical,
			Source:    SourcePath,
		}
	case k == 1:
		return Resolution{
			Locale:         last,
			Remainder:      remainder,
			RedirectNeeded: true,
			Reason:         ReasonCaseMismatch,
			Source:         SourcePath,
		}
	default:
		return Resolution{
			Locale:         last,
			Remainder:      remainder,
			RedirectNeeded: true,
			Reason:         ReasonStackedPrefix,
			Source:         SourcePath,
		}
	}
}

// Strip removes every leading locale-like segment. It returns how many were
// removed, the canonical code of the last one, and the rest of the path.
func (r *Resolver) Strip(segments []string) (count int, last Code, remainder []string) {
	for count < len(segments) {
		code, ok := r.catalog.Lookup(segments[count])
		if !ok {
			break
		}
		last = code
		count++
	}
	remainder = make([]string, len(segments)-count)
	copy(remainder, segments[count:])
	return count, last, remainder
}

// Fallback applies the precedence used when the path carries no locale:
// stored preference, then negotiated hint, then the catalog default.
func (r *Resolver) Fallback(stored, hint string) (Code, Source) {
	if code, ok := r.catalog.Lookup(strings.TrimSpace(stored)); ok {
		return code, SourceStored
	}
	if code, ok := r.catalog.MatchHint(hint); ok {
		return code, SourceHint
	}
	return r.catalog.Default(), SourceDefault
}

// ResolvePath is Resolve over a slash-separated path. A path whose segments are
// canonical still needs a redirect when it is not spelled the way Path renders
// it; a single trailing slash is accepted.
func (r *Resolver) ResolvePath(p, stored, hint string) Resolution {
	res := r.Resolve(SplitPath(p), stored, hint)
	if !res.RedirectNeeded && strings.TrimSuffix(p, "/") != res.Path() {
		res.RedirectNeeded = true
		res.Reason = ReasonMalformedSlashes
	}
	return res
}
