package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable in the
// current environment. Secrets are only mandatory outside development so a
// fresh checkout still boots against local defaults.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, "server_port must not be empty")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errs = append(errs, "db_host, db_port and db_name must not be empty")
	}

	if IsProduction() || IsCI() {
		if cfg.JWTSecret == "" {
			errs = append(errs, "jwt_secret is required")
		}
		if cfg.DBPassword == "" {
			errs = append(errs, "db_password is required")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
