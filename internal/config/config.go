// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// note client and the note server. It is populated by merging built-in
// defaults, an optional .env file, environment variables, command-line flags
// and an optional JSON file. Each binary then takes its own view of it via
// [GetClientConfig] or [GetServerConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and token settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings. The server uses a
	// PostgreSQL DSN, the client a SQLite file path.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout of the note server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter points the client at the remote note service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// Notes holds the defaults applied to newly created notes.
	Notes Notes `envPrefix:"NOTES_"`

	// Catalog holds the location of the folder and tag catalog.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// Log holds logging destinations.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

type App struct {
	// Token is the bearer token the client presents to the note service.
	// The acting user is read from its subject claim.
	Token string `env:"TOKEN"`

	// UserID selects the acting user when the service runs without
	// authentication. Ignored when Token is set.
	UserID string `env:"USER_ID"`

	// TokenSignKey enables bearer authentication on the server when set.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	TokenIssuer string `env:"TOKEN_ISSUER"`

	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	Version string `env:"VERSION"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

type DB struct {
	DSN string `env:"DATABASE_URI"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Adapter struct {
	// HTTPAddress is the base URL of the note service, e.g. http://localhost:8080.
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Workers struct {
	// RefreshInterval is the period of the background reload. Zero disables it.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

type Notes struct {
	DefaultFolder string `env:"DEFAULT_FOLDER"`

	DefaultColor string `env:"DEFAULT_COLOR"`

	// Language is a BCP 47 tag selecting the collation of title and folder
	// ordering.
	Language string `env:"LANGUAGE"`
}

type Catalog struct {
	// Path of a YAML catalog file. Empty means the built-in catalog.
	Path string `env:"PATH"`
}

type Log struct {
	// FilePath is where the client writes its log. The server logs to stdout.
	FilePath string `env:"FILE"`
}

// GetStructuredConfig assembles the configuration from all sources. args are
// the command-line arguments without the program name.
func GetStructuredConfig(defaults *StructuredConfig, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults(defaults).
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
