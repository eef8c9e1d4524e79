// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds token settings. An empty TokenSignKey disables bearer
// authentication.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
}

type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

type ServerDB struct {
	DSN string
}

type ServerStorage struct {
	DB ServerDB
}

// ServerConfig is the validated configuration of the note server.
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
}

// AuthEnabled reports whether requests must carry a valid bearer token.
func (c *ServerConfig) AuthEnabled() bool {
	return c.App.TokenSignKey != ""
}

// ServerDefaults returns the lowest-priority configuration layer of the
// server.
func ServerDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-note-keeper",
			TokenDuration: 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(ServerDefaults(), args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: ServerDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
