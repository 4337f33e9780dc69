// Package config loads query definition documents.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SQLGEN_"

// Load loads a query document from a YAML file with priority:
// 1. Environment variables (highest priority)
// 2. The YAML document
// 3. Default values (lowest priority)
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, NewMissingFieldError("file", "pass a document path or use LoadBytes")
	}
	return load(file.Provider(path), path)
}

// LoadBytes loads a query document from in-memory YAML, such as standard input.
func LoadBytes(data []byte) (*Config, error) {
	return load(rawbytes.Provider(data), "document")
}

func load(source koanf.Provider, name string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(source, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// envKey converts SQLGEN_LOG_LEVEL to log.level. The query.group_by and
// query.order_by keys keep their underscore.
func envKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "_", ".")
	key = strings.NewReplacer("group.by", "group_by", "order.by", "order_by").Replace(key)
	return key, value
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"dialect":    "sqlserver",
		"log.level":  "info",
		"log.pretty": false,
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}
