package site

import (
	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/server"
	"github.com/alquimiadental/site/core/static"
	"github.com/alquimiadental/site/integration/database/redis"
)

// Config is the complete server configuration, loaded from the environment.
type Config struct {
	Locale locale.Config
	Server server.Config
	Static static.Config
	Redis  redis.Config

	AppName  string `env:"APP_NAME" envDefault:"alquimia-dental"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// BasePath is the public prefix the site is served under, e.g. "/AlquimiaDental".
	BasePath string `env:"PUBLIC_BASE" envDefault:""`

	MetricsEnabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"site"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Locale:           locale.DefaultConfig(),
		Server:           server.DefaultConfig(),
		Static:           static.DefaultConfig(),
		AppName:          "alquimia-dental",
		Env:              "development",
		LogLevel:         "info",
		MetricsEnabled:   true,
		MetricsNamespace: "site",
	}
}
