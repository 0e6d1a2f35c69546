package fallback

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/logger"
)

var (
	ErrNoCatalog  = errors.New("fallback: catalog is required")
	ErrMissingDir = errors.New("fallback: build directory does not exist")
)

// Options configures Generate.
type Options struct {
	// BasePath is the public prefix the site is served under, e.g. "/AlquimiaDental".
	BasePath string
	Catalog  *locale.Catalog
	// Title is used for both pages. Defaults to "Alquimia Dental".
	Title  string
	Logger *slog.Logger
}

type pageData struct {
	Title     string
	Base      string
	Landing   string
	Default   string
	Supported []string
}

// Generate prepares a static build in dir for hosts without server-side
// redirects. It promotes per-locale index files into {lang}/index.html and
// writes a root index.html that sends visitors to the default locale, a
// 404.html that applies the last-consecutive-locale rule in the browser, and
// an empty .nojekyll.
func Generate(dir string, opts Options) error {
	if opts.Catalog == nil {
		return ErrNoCatalog
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrMissingDir, dir)
	}
	if opts.Title == "" {
		opts.Title = "Alquimia Dental"
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, code := range opts.Catalog.Supported() {
		if err := promoteIndex(dir, string(code), log); err != nil {
			return err
		}
	}

	base := locale.NormalizeBasePath(opts.BasePath)
	data := pageData{
		Title:     opts.Title,
		Base:      base,
		Landing:   locale.BaseHref(base, opts.Catalog.Default()),
		Default:   string(opts.Catalog.Default()),
		Supported: opts.Catalog.Strings(),
	}

	if err := render(filepath.Join(dir, "index.html"), indexTemplate, data); err != nil {
		return err
	}
	if err := render(filepath.Join(dir, "404.html"), notFoundTemplate, data); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, ".nojekyll"), nil, 0o644); err != nil {
		return fmt.Errorf("fallback: write .nojekyll: %w", err)
	}

	log.Info("fallback pages written",
		logger.Component("fallback"),
		logger.Path(dir),
		logger.Target(data.Landing),
	)
	return nil
}

// promoteIndex moves {lang}/index.csr.html, or else index.{lang}.html, to
// {lang}/index.html. When both exist the second is left in place with a warning.
func promoteIndex(dir, lang string, log *slog.Logger) error {
	dest := filepath.Join(dir, lang, "index.html")
	sources := []string{
		filepath.Join(dir, lang, "index.csr.html"),
		filepath.Join(dir, "index."+lang+".html"),
	}

	promoted := ""
	for _, src := range sources {
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if promoted != "" {
			log.Warn("locale index not promoted: already promoted another file",
				logger.Component("fallback"),
				logger.Locale(lang),
				logger.Path(src),
				logger.Target(promoted),
			)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("fallback: create %s: %w", filepath.Dir(dest), err)
		}
		if err := os.Rename(src, dest); err != nil {
			return fmt.Errorf("fallback: move %s: %w", src, err)
		}
		promoted = src
		log.Info("locale index promoted",
			logger.Component("fallback"),
			logger.Locale(lang),
			logger.Path(dest),
		)
	}
	return nil
}

func render(path string, tmpl *template.Template, data pageData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fallback: create %s: %w", path, err)
	}
	if err := tmpl.Execute(f, data); err != nil {
		_ = f.Close()
		return fmt.Errorf("fallback: render %s: %w", path, err)
	}
	return f.Close()
}
