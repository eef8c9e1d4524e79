package config

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// ClientApp holds the identity the client acts as.
type ClientApp struct {
	Token   string
	UserID  string
	Version string
}

// ClientAdapter configures the connection to the note service.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB is the local SQLite database holding the session and preferences.
type ClientDB struct {
	DSN string
}

type ClientStorage struct {
	DB ClientDB
}

type ClientWorkers struct {
	RefreshInterval time.Duration
}

// ClientNotes holds defaults applied to new notes.
type ClientNotes struct {
	DefaultFolder string
	DefaultColor  string
	Language      language.Tag
}

// ClientConfig is the validated configuration of the note client.
type ClientConfig struct {
	App         ClientApp
	Adapter     ClientAdapter
	Storage     ClientStorage
	Workers     ClientWorkers
	Notes       ClientNotes
	CatalogPath string
	LogFilePath string
}

// ClientDefaults returns the lowest-priority configuration layer of the
// client. The background reload is off unless an interval is configured.
func ClientDefaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "notes-client.db"}},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Notes: Notes{
			DefaultFolder: "Personal",
			DefaultColor:  "#FFC1E3",
			Language:      "en",
		},
		Log: Log{FilePath: "logs/notes-client.log"},
	}
}

// GetClientConfig builds and validates the client configuration from args
// (command-line arguments without the program name) and the environment.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(ClientDefaults(), args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Token:   cfg.App.Token,
			UserID:  cfg.App.UserID,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Notes: ClientNotes{
			DefaultFolder: cfg.Notes.DefaultFolder,
			DefaultColor:  cfg.Notes.DefaultColor,
			Language:      language.Make(cfg.Notes.Language),
		},
		CatalogPath: cfg.Catalog.Path,
		LogFilePath: cfg.Log.FilePath,
	}
}
