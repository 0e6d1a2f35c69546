// Package locale decides which language prefix a site URL must carry.
//
// A Catalog holds the closed set of supported locale codes and the default one.
// A Resolver turns path segments, an optional stored preference and an optional
// negotiated language hint into a Resolution: the canonical locale, the path
// remainder with every leading locale segment removed, and whether the caller
// has to redirect.
//
//	catalog := locale.MustCatalog("es", "es", "en")
//	resolver := locale.NewResolver(catalog)
//
//	res := resolver.Resolve([]string{"es", "en", "opinions"}, "", "")
//	// res.Locale == "en", res.Remainder == [opinions], res.Path() == "/en/opinions"
//
// # Precedence
//
// When the path carries locale segments, the last consecutive one wins. When it
// carries none, the stored preference wins over the hint, and the hint over
// the catalog default. Hints are reduced to the primary subtag of their first
// entry, so "es-CO,en;q=0.8" selects "es".
//
// # Canonical paths
//
// A canonical path starts with exactly one supported code in lowercase and has
// no further locale segment after it. Resolving a canonical path never asks for
// a redirect, so at most one redirect reaches a fixed point.
//
// The resolver is pure and safe for concurrent use. Misconfiguration is reported
// once, at construction, as a *ConfigurationError.
package locale
