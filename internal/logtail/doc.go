// Package logtail reads the end of marauder's log file for the diagnostics overlay.
//
// Read extracts the last N lines with a ring buffer, scanning the file once
// and holding at most N lines in memory. Parse turns the JSON lines written by
// the logging package into Entry values; anything that is not a JSON object
// is kept as a plain message so hand-edited or truncated lines still show.
//
// Read returns nil, nil for a missing file. Other I/O errors are wrapped.
// Parse never fails.
package logtail
