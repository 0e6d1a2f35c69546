package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alquimiadental/site/core/handler"
	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/metrics"
	"github.com/alquimiadental/site/middleware"
)

type ctx = handler.RequestContext

func newResolver(t *testing.T) *locale.Resolver {
	t.Helper()
	catalog, err := locale.NewCatalog("es", "es", "en")
	require.NoError(t, err)
	return locale.NewResolver(catalog)
}

// page answers 200 with the locale and base href it received.
func page(c *ctx) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		req, ok := locale.FromContext(r.Context())
		if !ok {
			_, err := w.Write([]byte("no-locale"))
			return err
		}
		_, err := w.Write([]byte(string(req.Locale) + " " + req.BaseHref))
		return err
	}
}

func serveLocale(cfg middleware.LocaleRedirectConfig, r *http.Request) *httptest.ResponseRecorder {
	h := handler.Chain(page, middleware.LocaleRedirectWithConfig[*ctx](cfg))
	rec := httptest.NewRecorder()
	handler.HTTP(handler.NewContext, h, nil).ServeHTTP(rec, r)
	return rec
}

func TestLocaleRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		accept   string
		location string
		vary     bool
	}{
		{"root uses accept language", "/", "en-US,en;q=0.9", "/en", true},
		{"root falls back to default", "/", "de-DE", "/es", true},
		{"missing prefix keeps path and query", "/services?tag=x", "en", "/en/services?tag=x", true},
		{"stacked prefix last wins", "/es/en/opinions", "", "/en/opinions", false},
		{"case normalization", "/ES/about", "en", "/es/about", false},
		{"stacked ignores hint", "/en/es/en", "es", "/en", false},
		{"empty segments collapse", "/es//about?x=1", "en", "/es/about?x=1", false},
		{"leading double slash", "//en//contact", "", "/en/contact", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			rec := serveLocale(middleware.LocaleRedirectConfig{Resolver: newResolver(t)}, r)

			assert.Equal(t, http.StatusMovedPermanently, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
			if tt.vary {
				assert.Equal(t, "Accept-Language", rec.Header().Get("Vary"))
			} else {
				assert.Empty(t, rec.Header().Get("Vary"))
			}
		})
	}
}

func TestLocaleRedirectAllowsCanonical(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/en/services?tag=x", nil)
	r.Header.Set("Accept-Language", "es")
	rec := serveLocale(middleware.LocaleRedirectConfig{Resolver: newResolver(t)}, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en /en/", rec.Body.String())
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))

	rec = serveLocale(middleware.LocaleRedirectConfig{Resolver: newResolver(t)}, httptest.NewRequest(http.MethodGet, "/es/", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "trailing slash is canonical")
}

func TestLocaleRedirectStaticAssetsPassThrough(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"/assets/logo.svg", "/favicon.ico", "/robots.txt", "/main-XYZ.js", "/styles.css"} {
		rec := serveLocale(middleware.LocaleRedirectConfig{Resolver: newResolver(t)}, httptest.NewRequest(http.MethodGet, p, nil))
		assert.Equal(t, http.StatusOK, rec.Code, p)
		assert.Equal(t, "no-locale", rec.Body.String(), p)
	}
}

func TestLocaleRedirectNonNavigationalMethods(t *testing.T) {
	t.Parallel()

	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions} {
		rec := serveLocale(middleware.LocaleRedirectConfig{Resolver: newResolver(t)}, httptest.NewRequest(m, "/contact", nil))
		assert.Equal(t, http.StatusOK, rec.Code, m)
		assert.Empty(t, rec.Header().Get("Location"), m)
	}

	rec := serveLocale(middleware.LocaleRedirectConfig{Resolver: newResolver(t)}, httptest.NewRequest(http.MethodHead, "/contact", nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/es/contact", rec.Header().Get("Location"))
}

func TestLocaleRedirectBasePath(t *testing.T) {
	t.Parallel()

	cfg := middleware.LocaleRedirectConfig{Resolver: newResolver(t), BasePath: "/AlquimiaDental/"}

	rec := serveLocale(cfg, httptest.NewRequest(http.MethodGet, "/AlquimiaDental/es/en/gallery", nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/AlquimiaDental/en/gallery", rec.Header().Get("Location"))

	rec = serveLocale(cfg, httptest.NewRequest(http.MethodGet, "/AlquimiaDental", nil))
	assert.Equal(t, "/AlquimiaDental/es", rec.Header().Get("Location"))

	rec = serveLocale(cfg, httptest.NewRequest(http.MethodGet, "/AlquimiaDental/en/gallery", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en /AlquimiaDental/en/", rec.Body.String())

	rec = serveLocale(cfg, httptest.NewRequest(http.MethodGet, "/other/page", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-locale", rec.Body.String())
}

func TestLocaleRedirectConfigOptions(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPrometheus(reg, "test")
	require.NoError(t, err)

	cfg := middleware.LocaleRedirectConfig{
		Resolver:   newResolver(t),
		StatusCode: http.StatusFound,
		Metrics:    rec,
		Skip: func(c handler.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
	}

	res := serveLocale(cfg, httptest.NewRequest(http.MethodGet, "/about", nil))
	assert.Equal(t, http.StatusFound, res.Code)

	res = serveLocale(cfg, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	assert.Equal(t, http.StatusOK, res.Code)

	_ = serveLocale(cfg, httptest.NewRequest(http.MethodGet, "/es/about", nil))

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "test_locale_redirects_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "test_locale_resolutions_total"))
}

func TestLocaleRedirectRequiresResolver(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		middleware.LocaleRedirectWithConfig[*ctx](middleware.LocaleRedirectConfig{})
	})
}

func TestLocaleHandler(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := locale.FromContext(r.Context())
		_, _ = w.Write([]byte(req.Locale))
	})
	h := middleware.LocaleHandler(middleware.LocaleRedirectConfig{Resolver: newResolver(t)})(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/EN", nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/en", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/en", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", rec.Body.String())
}
