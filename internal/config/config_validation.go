package config

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var colorValidator = validator.New()

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Notes.DefaultFolder == "" {
		return ErrInvalidNotesConfigs
	}
	if cfg.Notes.DefaultColor != "" && colorValidator.Var(cfg.Notes.DefaultColor, "hexcolor") != nil {
		return ErrInvalidNotesConfigs
	}
	if cfg.Notes.Language == language.Und {
		return ErrInvalidNotesConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.AuthEnabled() && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		return ErrInvalidAppConfigs
	}

	return nil
}
