package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// configBuilder collects partial configurations from several sources and
// merges them in the order they were added. Later non-zero fields win.
type configBuilder struct {
	configs []*StructuredConfig
	dotEnv  map[string]string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

// withDefaults adds the binary's built-in defaults as the lowest-priority
// layer. A nil defaults is ignored.
func (b *configBuilder) withDefaults(defaults *StructuredConfig) *configBuilder {
	if defaults != nil {
		b.configs = append(b.configs, defaults)
	}
	return b
}

// withDotEnv remembers the variables of the .env file at path so withEnv can
// see them. A missing file is not an error.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	vars, err := readDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.dotEnv = vars
	return b
}

// withEnv parses the process environment. Real environment variables take
// precedence over values from the .env file.
func (b *configBuilder) withEnv() *configBuilder {
	environ := make(map[string]string, len(b.dotEnv))
	for k, v := range b.dotEnv {
		environ[k] = v
	}
	for k, v := range env.ToMap(os.Environ()) {
		environ[k] = v
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSON loads the JSON file named by the last source that set
// JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
