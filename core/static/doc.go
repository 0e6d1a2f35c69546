// Package static serves the built site.
//
// AssetMatcher lists the paths that are static assets (bundles, manifests,
// crawler files). The locale redirect middleware lets them through untouched
// and SPA answers 404 for missing ones instead of the index page.
//
//	assets := static.NewAssetMatcher(cfg)
//	spa := static.SPA[*handler.RequestContext](cfg.Root,
//		static.WithAssets(assets),
//		static.WithCatalog(resolver.Catalog()),
//	)
package static
