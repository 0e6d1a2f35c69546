package locale_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alquimiadental/site/core/locale"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	c, err := locale.NewCatalog(" ES ", "es", "EN")
	require.NoError(t, err)

	assert.Equal(t, locale.Code("es"), c.Default())
	assert.Equal(t, []locale.Code{"es", "en"}, c.Supported())
	assert.True(t, c.IsSupported("en"))
	assert.True(t, c.IsSupported("En"))
	assert.False(t, c.IsSupported("fr"))
	assert.False(t, c.IsSupported(""))
}

func TestNewCatalogConfigurationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		def       string
		supported []string
	}{
		{"empty list", "es", nil},
		{"default not supported", "fr", []string{"es", "en"}},
		{"duplicate after normalization", "es", []string{"es", "ES"}},
		{"blank entry", "es", []string{"es", " "}},
		{"blank default", "", []string{"es"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := locale.NewCatalog(tt.def, tt.supported...)
			assert.Nil(t, c)
			require.Error(t, err)
			assert.ErrorIs(t, err, locale.ErrInvalidCatalog)

			var cfgErr *locale.ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestMustCatalogPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { locale.MustCatalog("de", "es", "en") })
	assert.NotPanics(t, func() { locale.MustCatalog("es", "es", "en") })
}

func TestSupportedReturnsCopy(t *testing.T) {
	t.Parallel()
	c := locale.MustCatalog("es", "es", "en")

	got := c.Supported()
	got[0] = "xx"

	assert.Equal(t, []locale.Code{"es", "en"}, c.Supported())
}

func TestLookup(t *testing.T) {
	t.Parallel()
	c := locale.MustCatalog("es", "es", "en")

	code, ok := c.Lookup("EN")
	assert.True(t, ok)
	assert.Equal(t, locale.Code("en"), code)

	_, ok = c.Lookup("english")
	assert.False(t, ok)
}

func TestMatchHint(t *testing.T) {
	t.Parallel()

	c := locale.MustCatalog("es", "es", "en")
	code, ok := c.MatchHint("en-AU,en;q=0.9")
	assert.True(t, ok)
	assert.Equal(t, locale.Code("en"), code)

	_, ok = c.MatchHint("de-DE")
	assert.False(t, ok)

	_, ok = c.MatchHint("")
	assert.False(t, ok)

	regional := locale.MustCatalog("pt-br", "pt-br", "en")
	code, ok = regional.MatchHint("pt-BR,pt;q=0.9")
	assert.True(t, ok)
	assert.Equal(t, locale.Code("pt-br"), code)

	code, ok = regional.MatchHint("pt_BR")
	assert.True(t, ok)
	assert.Equal(t, locale.Code("pt-br"), code)
}

func TestPrimarySubtag(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"es-CO":                  "es",
		"en-US,en;q=0.9":         "en",
		"fr_FR":                  "fr",
		" EN ":                   "en",
		"de;q=0.8":               "de",
		"zh-Hant-TW,zh;q=0.8":    "zh",
		"*":                      "",
		"":                       "",
		"es-419,es;q=0.9,en;q=1": "es",
	}

	for in, want := range tests {
		assert.Equal(t, want, locale.PrimarySubtag(in), "hint %q", in)
	}
}

func TestPathHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"es", "about"}, locale.SplitPath("/es//about/"))
	assert.Empty(t, locale.SplitPath("/"))
	assert.Equal(t, "/en", locale.JoinPath("en", nil))
	assert.Equal(t, "/en/a/b", locale.JoinPath("en", []string{"a", "b"}))

	assert.Equal(t, "", locale.NormalizeBasePath("/"))
	assert.Equal(t, "/AlquimiaDental", locale.NormalizeBasePath("AlquimiaDental/"))

	p, ok := locale.TrimBasePath("/AlquimiaDental", "/AlquimiaDental/es/about")
	assert.True(t, ok)
	assert.Equal(t, "/es/about", p)

	p, ok = locale.TrimBasePath("/AlquimiaDental", "/AlquimiaDental")
	assert.True(t, ok)
	assert.Equal(t, "/", p)

	_, ok = locale.TrimBasePath("/AlquimiaDental", "/AlquimiaDentalX/es")
	assert.False(t, ok)

	p, ok = locale.TrimBasePath("", "/es")
	assert.True(t, ok)
	assert.Equal(t, "/es", p)

	assert.Equal(t, "/es/", locale.BaseHref("", "es"))
	assert.Equal(t, "/AlquimiaDental/en/", locale.BaseHref("/AlquimiaDental/", "en"))
}

func TestRequestContext(t *testing.T) {
	t.Parallel()

	_, ok := locale.FromContext(context.Background())
	assert.False(t, ok)

	ctx := locale.WithContext(context.Background(), locale.Request{Locale: "en", BaseHref: "/en/"})
	req, ok := locale.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, locale.Code("en"), req.Locale)
	assert.Equal(t, "/en/", req.BaseHref)
}

func TestMatchHintKeepsLegacyCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		enabled string
		hint    string
	}{
		{"tl", "tl-PH"},
		{"iw", "iw-IL"},
		{"in", "in-ID"},
		{"sh", "sh-RS"},
		{"mo", "mo-MD"},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			t.Parallel()
			r := locale.NewResolver(locale.MustCatalog("es", "es", tt.enabled))

			res := r.Resolve(nil, "", tt.hint)

			assert.Equal(t, locale.Code(tt.enabled), res.Locale)
			assert.Equal(t, locale.SourceHint, res.Source)
			assert.Equal(t, tt.enabled, locale.PrimarySubtag(tt.hint))
		})
	}
}

func TestMatchHintFallsBackToCanonicalBase(t *testing.T) {
	t.Parallel()

	c := locale.MustCatalog("es", "es", "he")
	code, ok := c.MatchHint("iw-IL")
	assert.True(t, ok)
	assert.Equal(t, locale.Code("he"), code)
}
