// Package navigation is the client-side half of locale routing.
//
// A Navigator owns a History and runs every navigation attempt through two
// guards. The entry guard turns the root route into /{locale} using the stored
// preference, then the runtime hint, then the catalog default. The normalizer
// guard resolves every other path and redirects to its canonical form, keeping
// query and fragment. Allowed navigations publish the locale on a
// localestate.Publisher.
//
//	nav := navigation.New(resolver,
//		navigation.WithStore(prefs),
//		navigation.WithHint(navigation.StaticHint("en-US")),
//	)
//	res, err := nav.Navigate(ctx, "/es/en/services?tag=x")
//	// res.URL == "/en/services?tag=x", res.Hops == 1
//
//	res, switched, err := nav.SwitchTo(ctx, "es")
//	// res.URL == "/es/services?tag=x"
//
// Canonical paths are fixed points of the resolver, so a navigation needs at
// most one redirect. WithMaxHops bounds custom guards that break this.
package navigation
