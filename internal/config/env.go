package config

import (
	"os"
	"path/filepath"

	"github.com/subosito/gotenv"
)

const (
	EnvAPIKey = "GOOGLE_API_KEY"
	EnvCX     = "GOOGLE_CX"

	dotenvFileName = ".env"
)

// Lookup resolves a single environment variable.
type Lookup func(key string) (string, bool)

// EnvironmentLookup consults the process environment first, then
// ~/.config/termsearch/.env, then ./.env. The first source that defines a
// key wins; dotenv files never override the real environment.
func EnvironmentLookup() Lookup {
	sources := []Lookup{os.LookupEnv}
	if dir, err := GetUserConfigDir(); err == nil {
		sources = append(sources, DotenvLookup(filepath.Join(dir, dotenvFileName)))
	}
	if wd, err := osGetwd(); err == nil {
		sources = append(sources, DotenvLookup(filepath.Join(wd, dotenvFileName)))
	}
	return ChainLookups(sources...)
}

// DotenvLookup reads a dotenv file once. A missing or unreadable file
// yields a lookup that never matches.
func DotenvLookup(path string) Lookup {
	env, err := gotenv.Read(path)
	if err != nil {
		return func(string) (string, bool) { return "", false }
	}
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// ChainLookups returns the first match across sources, in order.
func ChainLookups(sources ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, src := range sources {
			if v, ok := src(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

// ApplyEnvironment overlays credentials found through lookup onto cfg.
// Empty values are ignored.
func ApplyEnvironment(cfg TermsearchConfig, lookup Lookup) TermsearchConfig {
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		cfg.Search.APIKey = v
	}
	if v, ok := lookup(EnvCX); ok && v != "" {
		cfg.Search.CX = v
	}
	return cfg
}
