package locale

// Config holds locale settings loaded from the environment.
type Config struct {
	Supported     []string `env:"LOCALE_SUPPORTED" envDefault:"es,en" envSeparator:","`
	Default       string   `env:"LOCALE_DEFAULT" envDefault:"es"`
	UnknownPrefix string   `env:"LOCALE_UNKNOWN_PREFIX" envDefault:"keep"`
}

// DefaultConfig returns the configuration of the production site.
func DefaultConfig() Config {
	return Config{
		Supported:     []string{"es", "en"},
		Default:       "es",
		UnknownPrefix: "keep",
	}
}

// NewFromConfig builds the catalog and resolver described by cfg.
// Any error is fatal configuration and must stop the process from serving.
func NewFromConfig(cfg Config, opts ...ResolverOption) (*Resolver, error) {
	catalog, err := NewCatalog(cfg.Default, cfg.Supported...)
	if err != nil {
		return nil, err
	}

	policy, err := ParseUnknownPrefixPolicy(cfg.UnknownPrefix)
	if err != nil {
		return nil, err
	}

	resolverOpts := append([]ResolverOption{WithUnknownPrefixPolicy(policy)}, opts...)
	return NewResolver(catalog, resolverOpts...), nil
}
