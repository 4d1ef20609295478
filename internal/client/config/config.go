package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/usergate/internal/common"
)

// Config holds runtime settings shared by the web panel and the console.
//
// Units: RequestTimeout, CSRFTTL and RedirectDelay are time.Duration values.
type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR"`
	APIBaseURL     string        `env:"API_BASE_URL"`
	APIKey         string        `env:"API_KEY"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	SessionBackend string `env:"SESSION_BACKEND"`
	SessionDSN     string `env:"SESSION_DSN"`
	SessionKey     string `env:"SESSION_KEY"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Prefix    string `env:"S3_PREFIX"`

	CSRFSecret    string        `env:"CSRF_SECRET"`
	CSRFTTL       time.Duration `env:"CSRF_TTL"`
	RedirectDelay time.Duration `env:"REDIRECT_DELAY"`

	LogLevel string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with values that work against the public demo API.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = "127.0.0.1:8080"
	c.APIBaseURL = "https://reqres.in/api"
	c.APIKey = "reqres-free-v1"
	c.RequestTimeout = 10 * time.Second
	c.SessionBackend = "sqlite"
	c.SessionDSN = "usergate.db"
	c.SessionKey = common.DefaultSessionKey
	c.S3Region = "us-east-1"
	c.S3Prefix = "usergate"
	c.CSRFTTL = time.Hour
	c.RedirectDelay = 1500 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig builds a Config from os.Args; see Load.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then the optional config file, then .env and the
// environment, then command-line flags. Later sources take precedence.
// Malformed input panics, as at startup there is nothing sensible to do.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
