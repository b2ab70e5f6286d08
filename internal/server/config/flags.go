package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":4000")
//	-d string   PostgreSQL DSN
//	-s string   token signing secret
//	-t int      token lifetime, minutes
//	-b int      bcrypt cost
//	-w string   static directory served at "/"
//	-l string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-b", "-w", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "token signing secret")
	ttl := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token lifetime (in minutes)")
	fs.IntVar(&cfg.BcryptCost, "b", cfg.BcryptCost, "bcrypt cost")
	fs.StringVar(&cfg.StaticDir, "w", cfg.StaticDir, "static web directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.TokenTTL = time.Duration(*ttl) * time.Minute
		}
	})
}
