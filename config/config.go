package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultLinkPolicy = "reject"
)

type Config struct {
	Addr        string
	NetworkPath string // empty selects the embedded network
	LogLevel    string
	LogFormat   string
	LinkPolicy  string
	CORSOrigins []string
	GinMode     string
}

// Load reads a .env file when present and then the process environment.
// It reports whether a .env file was loaded.
func Load() (Config, bool) {
	loaded := godotenv.Load() == nil
	return FromEnv(os.Getenv), loaded
}

// FromEnv builds a Config from a lookup function, applying defaults for
// unset keys.
func FromEnv(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	var origins []string
	for _, o := range strings.Split(get("METRO_CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Addr:        get("METRO_ADDR", DefaultAddr),
		NetworkPath: get("METRO_NETWORK", ""),
		LogLevel:    get("METRO_LOG_LEVEL", DefaultLogLevel),
		LogFormat:   get("METRO_LOG_FORMAT", DefaultLogFormat),
		LinkPolicy:  get("METRO_LINK_POLICY", DefaultLinkPolicy),
		CORSOrigins: origins,
		GinMode:     get("GIN_MODE", "release"),
	}
}
