// Package catalog defines the character records Marauder browses and loads them.
//
// # Overview
//
// The collection is a single JSON array of character objects. It is read once
// at startup and never changes afterwards. There is no pagination or filtering
// at the transport level; everything past the initial read happens in memory.
//
// # Files
//
//   - types.go: Character, Wand and House mirroring the asset schema
//   - loader.go: Loader and its source kinds (bundled, file, http)
//   - bundled.go: the embedded personajes.json asset
//
// # Sources
//
// NewLoader accepts a source string:
//
//	""  or "bundled"        embedded asset compiled into the binary
//	"./personajes.json"     plain path, "~" expanded
//	"file:///srv/p.json"    file URL
//	"https://host/p.json"   one GET request
//
// # Error Handling
//
// Load returns an error for any failure; the caller decides how to degrade.
// A payload that is not valid JSON or not an array wraps ErrMalformedCatalog so
// callers can tell a bad asset from a transport failure:
//
//	records, err := loader.Load(ctx)
//	if errors.Is(err, catalog.ErrMalformedCatalog) {
//		// asset is broken, retrying would not help
//	}
//
// Only the array itself is all-or-nothing. Individual records are not
// validated: missing or mistyped fields decode to zero values, entries that
// are not objects are dropped, and the presentation layer shows placeholders.
package catalog
