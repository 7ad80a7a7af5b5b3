package config

import (
	"os"
)

// Environment is the runtime environment the server was started in. It
// decides which configuration checks are mandatory.
type Environment string

const (
	Development Environment = "development"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads the current environment. CI pipelines export
// CI=true; everything else is selected through ENV. An unset or unknown
// ENV means a local development checkout.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	if os.Getenv("ENV") == "production" {
		return Production
	}
	return Development
}

// IsProduction returns true if the current environment is production
func IsProduction() bool {
	return GetEnvironment() == Production
}

// IsCI returns true if the current environment is CI
func IsCI() bool {
	return GetEnvironment() == CI
}
