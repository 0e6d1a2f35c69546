package static

// Config holds the static host settings.
type Config struct {
	Root          string   `env:"STATIC_ROOT" envDefault:"./dist/browser"`
	IndexFile     string   `env:"STATIC_INDEX_FILE" envDefault:"index.html"`
	AssetPrefixes []string `env:"STATIC_ASSET_PREFIXES" envSeparator:","`
	AssetFiles    []string `env:"STATIC_ASSET_FILES" envSeparator:","`
	AssetPatterns []string `env:"STATIC_ASSET_PATTERNS" envSeparator:","`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Root:      "./dist/browser",
		IndexFile: "index.html",
	}
}
