package fallback_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alquimiadental/site/core/fallback"
	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/logger"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "es"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es", "index.csr.html"), []byte("es page"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.en.html"), []byte("en page"), 0o644))

	err := fallback.Generate(dir, fallback.Options{
		BasePath: "AlquimiaDental/",
		Catalog:  locale.MustCatalog("es", "es", "en"),
	})
	require.NoError(t, err)

	es, err := os.ReadFile(filepath.Join(dir, "es", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "es page", string(es))
	assert.NoFileExists(t, filepath.Join(dir, "es", "index.csr.html"))

	en, err := os.ReadFile(filepath.Join(dir, "en", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "en page", string(en))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `content="0; url=/AlquimiaDental/es/"`)
	assert.Contains(t, string(index), `<a href="/AlquimiaDental/es/">`)
	assert.Contains(t, string(index), `<title>Alquimia Dental</title>`)

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "location.replace(target + location.search + location.hash)")
	assert.Contains(t, string(notFound), `<html lang="es">`)

	assert.FileExists(t, filepath.Join(dir, ".nojekyll"))
}

func TestGenerateKeepsFirstIndexOnConflict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "index.csr.html"), []byte("csr page"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.en.html"), []byte("prerendered page"), 0o644))

	var logs bytes.Buffer
	err := fallback.Generate(dir, fallback.Options{
		Catalog: locale.MustCatalog("es", "es", "en"),
		Logger:  logger.New(logger.WithOutput(&logs), logger.WithLevel(slog.LevelWarn)),
	})
	require.NoError(t, err)

	en, err := os.ReadFile(filepath.Join(dir, "en", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "csr page", string(en))

	left, err := os.ReadFile(filepath.Join(dir, "index.en.html"))
	require.NoError(t, err)
	assert.Equal(t, "prerendered page", string(left))
	assert.Contains(t, logs.String(), "locale index not promoted")
}

func TestGenerateRootBase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := fallback.Generate(dir, fallback.Options{
		Catalog: locale.MustCatalog("en", "es", "en"),
		Title:   "Clinic",
	})
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `content="0; url=/en/"`)
	assert.Contains(t, string(index), `<title>Clinic</title>`)
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	err := fallback.Generate(t.TempDir(), fallback.Options{})
	assert.ErrorIs(t, err, fallback.ErrNoCatalog)

	err = fallback.Generate(filepath.Join(t.TempDir(), "missing"), fallback.Options{
		Catalog: locale.MustCatalog("es", "es"),
	})
	assert.ErrorIs(t, err, fallback.ErrMissingDir)
}
