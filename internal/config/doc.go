// Package config loads marauder's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marauder/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, use the defaults for those fields
//
// # TOML Format
//
//	catalog = "bundled"                        # "bundled", a path, file:// or http(s) URL
//	log_file = "~/.local/state/marauder/marauder.log"
//	log_level = "info"                         # debug | info | warn | error
//	locale = "es"                              # es | en
//	request_timeout = "5s"
//
// Every field is optional. Tilde expansion is applied to log_file. The catalog
// value is handed to catalog.NewLoader unchanged, which does its own expansion.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, invalid TOML and an unparsable or non-positive
// request_timeout. A missing file is not an error.
//
// Command-line flags are layered on top with Config.Apply.
package config
