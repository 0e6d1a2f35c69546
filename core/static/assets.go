package static

import (
	"path"
	"strings"
)

// AssetMatcher decides which request paths are static assets. Assets are
// served as-is and never get a locale prefix.
type AssetMatcher struct {
	// Prefixes match any path that starts with them, e.g. "/assets/".
	Prefixes []string
	// Files match exact paths, e.g. "/robots.txt".
	Files []string
	// Patterns are path.Match globs applied to the last path element, e.g. "*.js".
	Patterns []string
}

// DefaultAssetMatcher covers built bundles, manifests and crawler files.
func DefaultAssetMatcher() *AssetMatcher {
	return &AssetMatcher{
		Prefixes: []string{"/assets/", "/.well-known/", "/media/", "/i18n/"},
		Files: []string{
			"/favicon.ico",
			"/robots.txt",
			"/sitemap.xml",
			"/manifest.webmanifest",
			"/site.webmanifest",
			"/ngsw.json",
			"/ngsw-worker.js",
		},
		Patterns: []string{
			"*.js", "*.mjs", "*.css", "*.map", "*.json", "*.txt", "*.xml",
			"*.ico", "*.png", "*.jpg", "*.jpeg", "*.gif", "*.svg", "*.webp", "*.avif",
			"*.woff", "*.woff2", "*.ttf", "*.otf", "*.eot",
			"*.mp4", "*.webm", "*.pdf",
		},
	}
}

// NewAssetMatcher builds a matcher from cfg. Empty lists fall back to the defaults.
func NewAssetMatcher(cfg Config) *AssetMatcher {
	m := DefaultAssetMatcher()
	if len(cfg.AssetPrefixes) > 0 {
		m.Prefixes = cfg.AssetPrefixes
	}
	if len(cfg.AssetFiles) > 0 {
		m.Files = cfg.AssetFiles
	}
	if len(cfg.AssetPatterns) > 0 {
		m.Patterns = cfg.AssetPatterns
	}
	return m
}

// Match reports whether p is a static asset. A nil matcher matches nothing.
func (m *AssetMatcher) Match(p string) bool {
	if m == nil || p == "" {
		return false
	}
	for _, prefix := range m.Prefixes {
		if prefix != "" && strings.HasPrefix(p, prefix) {
			return true
		}
	}
	for _, f := range m.Files {
		if p == f {
			return true
		}
	}
	base := path.Base(p)
	if base == "/" || base == "." {
		return false
	}
	lower := strings.ToLower(base)
	for _, pattern := range m.Patterns {
		if ok, _ := path.Match(pattern, lower); ok {
			return true
		}
	}
	return false
}
