// Package config provides configuration management for termsearch.
//
// Configuration is resolved once at process startup and handed to the rest
// of the program as plain data; no other package reads files or the
// environment on its own.
//
// # Configuration Layers
//
// Layers are merged in the following order, later ones overriding earlier ones:
//
//  1. Default Configuration (embedded in binary)
//
//  2. User Configuration (~/.config/termsearch/config.yaml)
//
//  3. Project Configuration (./.termsearch/config.yaml)
//
//  4. Environment (GOOGLE_API_KEY, GOOGLE_CX), looked up in the process
//     environment, then ~/.config/termsearch/.env, then ./.env
//
//  5. Command-line flags that were explicitly set
//
// # Configuration Structure
//
//	search:
//	  apiKey: "..."
//	  cx: "..."
//	  safe: true
//	  endpoint: "https://www.googleapis.com/customsearch/v1"
//	  timeout: 15s
//	ui:
//	  pollInterval: 50ms
//	  separatorRows: 1
//	logging:
//	  level: debug
//	  file: /tmp/termsearch.log
//	update:
//	  repository: owner/name
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	cfg = config.ApplyEnvironment(cfg, config.EnvironmentLookup())
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
