package config

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	dbtypes "github.com/gaborage/sqlbricks/database/types"
	"github.com/gaborage/sqlbricks/validation"
)

// Dialect aliases accepted in documents, normalized to the vendor identifiers.
var dialectAliases = map[string]string{
	dbtypes.SQLServer:  dbtypes.SQLServer,
	"mssql":            dbtypes.SQLServer,
	dbtypes.PostgreSQL: dbtypes.PostgreSQL,
	"postgres":         dbtypes.PostgreSQL,
}

var validLogLevels = []string{"trace", "debug", "info", "warn", "error"}

var documentValidator = sync.OnceValue(validation.NewValidator)

// Validate normalizes the dialect and checks the document structure.
func Validate(cfg *Config) error {
	if err := validateDialect(cfg); err != nil {
		return err
	}

	if err := validateLog(&cfg.Log); err != nil {
		return fmt.Errorf("log config: %w", err)
	}

	if err := documentValidator().Validate(cfg); err != nil {
		return fmt.Errorf("query definition: %w", err)
	}

	return nil
}

func validateDialect(cfg *Config) error {
	name := strings.ToLower(strings.TrimSpace(cfg.Dialect))
	vendor, ok := dialectAliases[name]
	if !ok {
		return NewInvalidFieldError("dialect", fmt.Sprintf("unsupported dialect %q", cfg.Dialect), SupportedDialects())
	}
	cfg.Dialect = vendor
	return nil
}

// SupportedDialects lists the accepted dialect names in sorted order.
func SupportedDialects() []string {
	names := make([]string, 0, len(dialectAliases))
	for name := range dialectAliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func validateLog(cfg *LogConfig) error {
	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	if !slices.Contains(validLogLevels, cfg.Level) {
		return NewInvalidFieldError("log.level", fmt.Sprintf("invalid log level %q", cfg.Level), validLogLevels)
	}
	return nil
}
