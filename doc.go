// Package site is the Alquimia Dental website backend. Every page lives
// under a locale prefix (/es/..., /en/...) and every package here cooperates
// to keep URLs in that canonical shape, on the server and in client runtimes.
//
// # Getting Documentation
//
//	go doc github.com/alquimiadental/site/core/locale
//	go doc -all github.com/alquimiadental/site/middleware
//
// # Locale Routing
//
//   - github.com/alquimiadental/site/core/locale: supported locale catalog,
//     path resolution and base path helpers
//   - github.com/alquimiadental/site/core/localestate: publisher of the locale
//     in effect for one client runtime
//   - github.com/alquimiadental/site/core/preference: persisted locale
//     preference (memory and Redis)
//   - github.com/alquimiadental/site/core/navigation: entry and normalizer
//     guards, navigation history and the locale switch controller
//   - github.com/alquimiadental/site/middleware: server redirect middleware,
//     request IDs and access logging
//
// # Serving
//
//   - github.com/alquimiadental/site/core/handler: generic handler and
//     middleware types
//   - github.com/alquimiadental/site/core/response: response helpers
//   - github.com/alquimiadental/site/core/static: single page application host
//     with asset matching and locale injection
//   - github.com/alquimiadental/site/core/fallback: redirect pages for static
//     hosts without server-side routing
//   - github.com/alquimiadental/site/core/server: HTTP server with graceful
//     shutdown
//   - github.com/alquimiadental/site/core/health: liveness and readiness probes
//   - github.com/alquimiadental/site/app/site: application wiring
//
// # Infrastructure
//
//   - github.com/alquimiadental/site/core/config: environment configuration
//   - github.com/alquimiadental/site/core/logger: slog setup and attributes
//   - github.com/alquimiadental/site/core/metrics: Prometheus counters
//   - github.com/alquimiadental/site/integration/database/redis: Redis client
//
// The site command (cmd/site) serves the build and exposes the resolver,
// navigator and fallback generator on the command line.
package site
