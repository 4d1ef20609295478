// Package config loads runtime configuration for the usergate web panel and
// console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. A .env file in the working directory (if present) and environment
//     variables prefixed with USERGATE_, e.g. USERGATE_API_BASE_URL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   HTTP listen address of the web panel
//	-u string   base URL of the remote user API
//	-k string   API key sent as x-api-key
//	-b string   session backend: sqlite, postgres, s3, memory
//	-d string   session backend DSN (file path for sqlite)
//	-l string   log level: debug, info, warn, error
//	-t int      remote request timeout (seconds)
//
// # File schema
//
// Durations accept strings like "1500ms" or integer nanoseconds:
//
//	{
//	  "http_addr": "127.0.0.1:8080",
//	  "api_base_url": "https://reqres.in/api",
//	  "session_backend": "sqlite",
//	  "session_dsn": "usergate.db",
//	  "redirect_delay": "1500ms"
//	}
package config
