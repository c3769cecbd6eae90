package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/jitsunotes/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   database URI
//	-b int      bcrypt cost
//	-l string   log level
//	-s          mark the session cookie Secure
//	-t int      shutdown timeout, seconds
//
// Only these flags are taken from os.Args (see flagx.FilterArgs), so -c and
// anything else on the command line do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-b", "-l", "-t"}, "-s")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseURI, "d", config.DatabaseURI, "database URI")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.SecureCookie, "s", config.SecureCookie, "secure session cookie")

	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
