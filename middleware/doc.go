// Package middleware provides HTTP middleware for the site: locale redirects,
// request IDs and access logging.
//
// Every middleware has a default constructor and a WithConfig variant:
//
//	h := handler.Chain(spa,
//		middleware.RequestID[*handler.RequestContext](),
//		middleware.LoggingWithLogger[*handler.RequestContext](log),
//		middleware.LocaleRedirectWithConfig[*handler.RequestContext](middleware.LocaleRedirectConfig{
//			Resolver: resolver,
//			BasePath: "/AlquimiaDental",
//		}),
//	)
package middleware
