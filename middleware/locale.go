package middleware

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/alquimiadental/site/core/handler"
	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/logger"
	"github.com/alquimiadental/site/core/metrics"
	"github.com/alquimiadental/site/core/response"
	"github.com/alquimiadental/site/core/static"
)

// LocaleRedirectConfig configures the locale redirect middleware.
type LocaleRedirectConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Resolver is required.
	Resolver *locale.Resolver
	// Assets lists paths that are never locale-rewritten (default: static.DefaultAssetMatcher)
	Assets *static.AssetMatcher
	// BasePath is the public prefix the site lives under, e.g. "/AlquimiaDental".
	// Requests outside it pass through.
	BasePath string
	// StatusCode for redirects (default: 301)
	StatusCode int
	// Logger for redirect decisions (default: discard)
	Logger *slog.Logger
	// Metrics receives redirect and resolution counts (default: metrics.Nop)
	Metrics metrics.Recorder
}

// LocaleRedirect creates the locale redirect middleware with default configuration.
func LocaleRedirect[C handler.Context](resolver *locale.Resolver) handler.Middleware[C] {
	return LocaleRedirectWithConfig[C](LocaleRedirectConfig{Resolver: resolver})
}

// LocaleRedirectWithConfig sends every navigational request to its canonical
// /{locale}/{rest} URL. GET and HEAD requests are resolved against the
// Accept-Language header; a non-canonical path gets a permanent redirect that
// keeps the query string. Canonical requests continue with the locale and base
// href stored in the request context and a Content-Language header.
//
// Panics if cfg.Resolver is nil.
func LocaleRedirectWithConfig[C handler.Context](cfg LocaleRedirectConfig) handler.Middleware[C] {
	if cfg.Resolver == nil {
		panic("middleware: locale redirect requires a resolver")
	}
	if cfg.Assets == nil {
		cfg.Assets = static.DefaultAssetMatcher()
	}
	if cfg.StatusCode == 0 {
		cfg.StatusCode = http.StatusMovedPermanently
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.Nop{}
	}
	cfg.BasePath = locale.NormalizeBasePath(cfg.BasePath)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			if req.Method != http.MethodGet && req.Method != http.MethodHead {
				return next(ctx)
			}

			p, ok := locale.TrimBasePath(cfg.BasePath, req.URL.EscapedPath())
			if !ok || cfg.Assets.Match(p) {
				return next(ctx)
			}

			res := cfg.Resolver.ResolvePath(p, "", req.Header.Get("Accept-Language"))

			if res.RedirectNeeded {
				target := cfg.BasePath + res.Path()
				if req.URL.RawQuery != "" {
					target += "?" + req.URL.RawQuery
				}

				requestID, _ := GetRequestID(ctx)
				cfg.Logger.DebugContext(ctx, "locale redirect",
					logger.Component("locale"),
					logger.RequestID(requestID),
					logger.Path(req.URL.Path),
					logger.Target(target),
					logger.Reason(string(res.Reason)),
					logger.Locale(string(res.Locale)),
				)
				cfg.Metrics.ObserveRedirect(metrics.OriginServer, string(res.Reason))

				redirect := response.RedirectWithStatus(target, cfg.StatusCode)
				return func(w http.ResponseWriter, r *http.Request) error {
					if res.Reason == locale.ReasonMissingPrefix {
						w.Header().Add("Vary", "Accept-Language")
					}
					return redirect(w, r)
				}
			}

			cfg.Metrics.ObserveResolution(metrics.OriginServer, string(res.Locale))
			ctx.SetValue(locale.ContextKey{}, locale.Request{
				Locale:   res.Locale,
				BaseHref: locale.BaseHref(cfg.BasePath, res.Locale),
			})

			resp := next(ctx)
			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set("Content-Language", string(res.Locale))
				return resp(w, r)
			}
		}
	}
}

// LocaleHandler is LocaleRedirectWithConfig for plain net/http handler chains.
func LocaleHandler(cfg LocaleRedirectConfig) func(http.Handler) http.Handler {
	mw := LocaleRedirectWithConfig[*handler.RequestContext](cfg)
	return func(next http.Handler) http.Handler {
		return handler.HTTP(handler.NewContext, mw(handler.Wrap[*handler.RequestContext](next)), nil)
	}
}
