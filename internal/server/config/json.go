package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jitsunotes/internal/flagx"
	"github.com/dmitrijs2005/jitsunotes/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Intervals use
// timex.Duration so both "10s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	DatabaseURI      string         `json:"database_uri"`
	BcryptCost       int            `json:"bcrypt_cost"`
	LogLevel         string         `json:"log_level"`
	SecureCookie     *bool          `json:"secure_cookie"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the file named by -c / -config. Keys that are
// absent from the file leave the current value untouched. An unreadable file
// or invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseURI != "" {
		config.DatabaseURI = c.DatabaseURI
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.SecureCookie != nil {
		config.SecureCookie = *c.SecureCookie
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
