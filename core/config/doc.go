// Package config loads environment variables into typed structs.
//
// A .env file is read on first use through godotenv and fields are parsed
// with caarlos0/env. Every struct type is parsed once and cached:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
