package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial configuration.
//
// Flags:
//
//	-a                server listen address in format [host]:[port]
//	-r                note service base URL used by the client
//	-d                database DSN (PostgreSQL for the server, SQLite file for the client)
//	-c / -config      JSON config file path
//	-token            bearer token presented by the client
//	-user             acting user id when the service runs without auth
//	-token-sign-key   token signing key (enables auth on the server)
//	-token-issuer     token issuer name
//	-token-duration   token lifetime (e.g. "24h")
//	-request-timeout  server request timeout (e.g. "30s")
//	-adapter-timeout  client request timeout (e.g. "10s")
//	-refresh-interval background reload period, 0 disables it
//	-default-folder   folder assigned to new notes
//	-default-color    color assigned to new notes
//	-lang             BCP 47 language used to order titles and folders
//	-catalog          YAML catalog file path
//	-log-file         client log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var token, userID string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout, adapterTimeout time.Duration
	var refreshInterval time.Duration
	var defaultFolder, defaultColor, lang string
	var catalogPath string
	var logFile string

	fs := flag.NewFlagSet("go-note-keeper", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "r", "", "Note service base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&userID, "user", "", "Acting user id")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background reload period (0 disables)")
	fs.StringVar(&defaultFolder, "default-folder", "", "Folder assigned to new notes")
	fs.StringVar(&defaultColor, "default-color", "", "Color assigned to new notes")
	fs.StringVar(&lang, "lang", "", "Language used to order titles and folders")
	fs.StringVar(&catalogPath, "catalog", "", "YAML catalog file path")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Token:         token,
			UserID:        userID,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{RefreshInterval: refreshInterval},
		Notes: Notes{
			DefaultFolder: defaultFolder,
			DefaultColor:  defaultColor,
			Language:      lang,
		},
		Catalog:      Catalog{Path: catalogPath},
		Log:          Log{FilePath: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Any host other than "localhost"
// must be an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
