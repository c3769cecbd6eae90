package config

import "os"

const (
	envDatabaseURI   = "DATABASE_URI"
	envServerAddress = "SERVER_ADDRESS"
)

// parseEnv overlays values from the process environment. Unset or empty
// variables are ignored.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(envDatabaseURI); ok && v != "" {
		config.DatabaseURI = v
	}
	if v, ok := os.LookupEnv(envServerAddress); ok && v != "" {
		config.EndpointAddrHTTP = v
	}
}
