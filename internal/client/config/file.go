package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/usergate/internal/flagx"
	"github.com/dmitrijs2005/usergate/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO for JSON and YAML config files. Empty fields leave
// the current value untouched.
type FileConfig struct {
	HTTPAddr       string         `json:"http_addr" yaml:"http_addr"`
	APIBaseURL     string         `json:"api_base_url" yaml:"api_base_url"`
	APIKey         string         `json:"api_key" yaml:"api_key"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	SessionBackend string         `json:"session_backend" yaml:"session_backend"`
	SessionDSN     string         `json:"session_dsn" yaml:"session_dsn"`
	SessionKey     string         `json:"session_key" yaml:"session_key"`
	S3Bucket       string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region       string         `json:"s3_region" yaml:"s3_region"`
	S3Endpoint     string         `json:"s3_endpoint" yaml:"s3_endpoint"`
	S3AccessKey    string         `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key" yaml:"s3_secret_key"`
	S3Prefix       string         `json:"s3_prefix" yaml:"s3_prefix"`
	CSRFSecret     string         `json:"csrf_secret" yaml:"csrf_secret"`
	CSRFTTL        timex.Duration `json:"csrf_ttl" yaml:"csrf_ttl"`
	RedirectDelay  timex.Duration `json:"redirect_delay" yaml:"redirect_delay"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.HTTPAddr, fc.HTTPAddr)
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.APIKey, fc.APIKey)
	setString(&cfg.SessionBackend, fc.SessionBackend)
	setString(&cfg.SessionDSN, fc.SessionDSN)
	setString(&cfg.SessionKey, fc.SessionKey)
	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3Endpoint, fc.S3Endpoint)
	setString(&cfg.S3AccessKey, fc.S3AccessKey)
	setString(&cfg.S3SecretKey, fc.S3SecretKey)
	setString(&cfg.S3Prefix, fc.S3Prefix)
	setString(&cfg.CSRFSecret, fc.CSRFSecret)
	setString(&cfg.LogLevel, fc.LogLevel)

	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.CSRFTTL.Duration > 0 {
		cfg.CSRFTTL = fc.CSRFTTL.Duration
	}
	if fc.RedirectDelay.Duration > 0 {
		cfg.RedirectDelay = fc.RedirectDelay.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
