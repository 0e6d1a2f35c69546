package locale

import (
	"fmt"
	"slices"
	"strings"
)

// Code is a supported locale code in canonical (lowercase) form.
type Code string

// String implements fmt.Stringer.
func (c Code) String() string {
	return string(c)
}

// Catalog is the immutable set of locales the site serves.
// Safe for concurrent use.
type Catalog struct {
	supported []Code
	index     map[Code]struct{}
	def       Code
}

// NewCatalog validates and builds a catalog. The supported order is preserved.
// Returns a *ConfigurationError if the list is empty, contains duplicates or
// blank entries, or does not contain the default.
func NewCatalog(defaultCode string, supported ...string) (*Catalog, error) {
	if len(supported) == 0 {
		return nil, &ConfigurationError{Reason: "supported locale list is empty"}
	}

	c := &Catalog{
		supported: make([]Code, 0, len(supported)),
		index:     make(map[Code]struct{}, len(supported)),
	}

	for _, raw := range supported {
		code := normalize(raw)
		if code == "" {
			return nil, &ConfigurationError{Reason: "blank locale code in supported list"}
		}
		if _, exists := c.index[code]; exists {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("duplicate locale %q", code)}
		}
		c.index[code] = struct{}{}
		c.supported = append(c.supported, code)
	}

	def := normalize(defaultCode)
	if def == "" {
		return nil, &ConfigurationError{Reason: "default locale is empty"}
	}
	if _, ok := c.index[def]; !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("default locale %q is not supported", def)}
	}
	c.def = def

	return c, nil
}

// MustCatalog is like NewCatalog but panics on misconfiguration.
// Intended for process startup.
func MustCatalog(defaultCode string, supported ...string) *Catalog {
	c, err := NewCatalog(defaultCode, supported...)
	if err != nil {
		panic(err)
	}
	return c
}

// Supported returns the supported locales in configured order.
func (c *Catalog) Supported() []Code {
	return slices.Clone(c.supported)
}

// Strings returns the supported locales as plain strings.
func (c *Catalog) Strings() []string {
	out := make([]string, len(c.supported))
	for i, code := range c.supported {
		out[i] = string(code)
	}
	return out
}

// Default returns the default locale.
func (c *Catalog) Default() Code {
	return c.def
}

// IsSupported reports whether s, lowercased, is a supported locale.
func (c *Catalog) IsSupported(s string) bool {
	_, ok := c.Lookup(s)
	return ok
}

// Lookup returns the canonical code for a locale-like segment.
func (c *Catalog) Lookup(segment string) (Code, bool) {
	code := Code(strings.ToLower(segment))
	if _, ok := c.index[code]; !ok {
		return "", false
	}
	return code, true
}

// MatchHint maps a negotiated language hint (an Accept-Language value or a
// runtime language setting) onto a supported locale. Candidates in order: the
// full first tag, its primary subtag as written, then the canonical base
// language of that tag.
func (c *Catalog) MatchHint(raw string) (Code, bool) {
	tag := firstTag(raw)
	if tag == "" {
		return "", false
	}
	for _, candidate := range []string{strings.ReplaceAll(tag, "_", "-"), PrimarySubtag(raw), canonicalBase(raw)} {
		if candidate == "" {
			continue
		}
		if code, ok := c.Lookup(candidate); ok {
			return code, true
		}
	}
	return "", false
}

func normalize(s string) Code {
	return Code(strings.ToLower(strings.TrimSpace(s)))
}
