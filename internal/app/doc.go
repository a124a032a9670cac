// Package app is the composition root for marauder.
//
// Run wires the pieces together in this order:
//
//  1. Load the TOML config and apply command-line overrides
//  2. Open the zap file logger
//  3. Build the catalog loader for the configured source
//  4. Load the saved theme preference
//  5. Start the Bubble Tea UI and block until it exits
//
// The catalog is fetched at most once per process. The UI asks for it from its
// Init command, and onceLoader guarantees that a second request (for example a
// re-created model) reuses the first outcome instead of issuing another fetch.
// A failed load is logged at error level and surfaces in the UI as an empty
// catalog; it is never returned from Run.
//
// Fatal errors returned from Run are limited to startup: an unreadable or
// invalid config, a log file that cannot be opened, an unsupported catalog
// source, or the terminal program itself failing.
package app
