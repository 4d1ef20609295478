package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/usergate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   web panel listen address
//	-u string   remote API base URL
//	-k string   remote API key
//	-b string   session backend
//	-d string   session backend DSN
//	-l string   log level
//	-t int      remote request timeout in seconds
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// components (such as -c) do not break parsing. Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-u", "-k", "-b", "-d", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "web panel listen address")
	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "remote API base URL")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "remote API key")
	fs.StringVar(&cfg.SessionBackend, "b", cfg.SessionBackend, "session backend (sqlite, postgres, s3, memory)")
	fs.StringVar(&cfg.SessionDSN, "d", cfg.SessionDSN, "session backend DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "remote request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
