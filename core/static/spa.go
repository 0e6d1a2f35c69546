package static

import (
	"bytes"
	"html"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alquimiadental/site/core/handler"
	"github.com/alquimiadental/site/core/locale"
)

type spaConfig struct {
	root        string
	indexFile   string
	stripPrefix string
	assets      *AssetMatcher
	catalog     *locale.Catalog
}

// SPAOption configures SPA serving.
type SPAOption func(*spaConfig)

// WithSPAIndex sets the index file (default "index.html").
func WithSPAIndex(indexFile string) SPAOption {
	return func(c *spaConfig) {
		if indexFile != "" {
			c.indexFile = indexFile
		}
	}
}

// WithSPAStripPrefix removes prefix from the URL path before looking up files.
func WithSPAStripPrefix(prefix string) SPAOption {
	return func(c *spaConfig) {
		c.stripPrefix = locale.NormalizeBasePath(prefix)
	}
}

// WithAssets sets the matcher for paths that must exist on disk.
// A missing asset is answered with 404 instead of the index page.
func WithAssets(m *AssetMatcher) SPAOption {
	return func(c *spaConfig) {
		c.assets = m
	}
}

// WithCatalog enables file lookup without a leading locale segment, so
// /es/main.js serves main.js.
func WithCatalog(c *locale.Catalog) SPAOption {
	return func(cfg *spaConfig) {
		cfg.catalog = c
	}
}

// SPA serves a built single page application. Existing files are served as
// they are; with WithCatalog a file is also looked up without its leading
// locale segment so bundles referenced relative to a locale base href
// resolve. Every other path
// gets the index page with <base href> and <html lang> set from the request
// locale (see locale.WithContext).
//
// Panics at startup if root or the index file is missing.
func SPA[C handler.Context](root string, opts ...SPAOption) handler.HandlerFunc[C] {
	cfg := &spaConfig{
		root:      filepath.Clean(root),
		indexFile: "index.html",
		assets:    DefaultAssetMatcher(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validateStartup(cfg.root, true); err != nil {
		panic("static.SPA: " + err.Error())
	}
	indexPath := filepath.Join(cfg.root, cfg.indexFile)
	if err := validateStartup(indexPath, false); err != nil {
		panic("static.SPA: " + err.Error())
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			urlPath := path.Clean("/" + r.URL.Path)
			if cfg.stripPrefix != "" {
				if trimmed, ok := locale.TrimBasePath(cfg.stripPrefix, urlPath); ok {
					urlPath = trimmed
				}
			}

			if filePath, ok := cfg.lookup(urlPath); ok {
				http.ServeFile(w, r, filePath)
				return nil
			}
			if cfg.assets.Match(urlPath) {
				http.NotFound(w, r)
				return nil
			}

			req, hasLocale := locale.FromContext(r.Context())
			page, err := os.ReadFile(indexPath)
			if err != nil {
				return err
			}
			if hasLocale {
				page = InjectLocale(page, req.Locale, req.BaseHref)
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Cache-Control", "no-cache")
			w.WriteHeader(http.StatusOK)
			if r.Method == http.MethodHead {
				return nil
			}
			_, err = w.Write(page)
			return err
		}
	}
}

// lookup finds urlPath on disk, then retries without a leading locale segment.
func (c *spaConfig) lookup(urlPath string) (string, bool) {
	if filePath, ok := c.file(urlPath); ok {
		return filePath, true
	}
	if c.catalog == nil {
		return "", false
	}
	first, rest, found := strings.Cut(strings.TrimPrefix(urlPath, "/"), "/")
	if !found || rest == "" {
		return "", false
	}
	if _, ok := c.catalog.Lookup(first); !ok {
		return "", false
	}
	return c.file("/" + rest)
}

// file resolves urlPath to a regular file inside root.
func (c *spaConfig) file(urlPath string) (string, bool) {
	if urlPath == "/" {
		return "", false
	}
	filePath := filepath.Join(c.root, filepath.FromSlash(urlPath))
	if err := validatePathSecurity(c.root, filePath); err != nil {
		return "", false
	}
	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return "", false
	}
	return filePath, true
}

var (
	baseTagRe  = regexp.MustCompile(`(?i)<base\s+href\s*=\s*["'][^"']*["']\s*/?>`)
	headTagRe  = regexp.MustCompile(`(?i)<head(\s[^>]*)?>`)
	htmlTagRe  = regexp.MustCompile(`(?i)<html(\s[^>]*)?>`)
	langAttrRe = regexp.MustCompile(`(?i)\slang\s*=\s*["'][^"']*["']`)
)

// InjectLocale sets <base href> and the lang attribute of <html> in an HTML document.
func InjectLocale(page []byte, code locale.Code, baseHref string) []byte {
	lang := html.EscapeString(string(code))
	base := []byte(`<base href="` + html.EscapeString(baseHref) + `">`)

	switch {
	case baseTagRe.Match(page):
		page = baseTagRe.ReplaceAllLiteral(page, base)
	case headTagRe.Match(page):
		loc := headTagRe.FindIndex(page)
		page = insertAt(page, loc[1], base)
	}

	if loc := htmlTagRe.FindIndex(page); loc != nil {
		tag := page[loc[0]:loc[1]]
		var updated []byte
		if langAttrRe.Match(tag) {
			updated = langAttrRe.ReplaceAllLiteral(tag, []byte(` lang="`+lang+`"`))
		} else {
			updated = append([]byte(`<html lang="`+lang+`"`), tag[len("<html"):]...)
		}
		page = bytes.Join([][]byte{page[:loc[0]], updated, page[loc[1]:]}, nil)
	}
	return page
}

func insertAt(page []byte, at int, chunk []byte) []byte {
	out := make([]byte, 0, len(page)+len(chunk))
	out = append(out, page[:at]...)
	out = append(out, chunk...)
	return append(out, page[at:]...)
}
