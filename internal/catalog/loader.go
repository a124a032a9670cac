package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrMalformedCatalog marks a payload that is not a JSON array of characters.
var ErrMalformedCatalog = errors.New("malformed catalog")

// SourceBundled selects the asset embedded in the binary.
const SourceBundled = "bundled"

const (
	defaultUserAgent = "marauder/0.1"
	requestTimeout   = 5 * time.Second
	maxPayloadBytes  = 32 << 20
)

type sourceKind int

const (
	sourceBundled sourceKind = iota
	sourceFile
	sourceHTTP
)

// Fetcher loads the full character collection.
// *Loader implements it; the UI depends on this interface for testing.
type Fetcher interface {
	Load(ctx context.Context) ([]Character, error)
}

var _ Fetcher = (*Loader)(nil)

// Loader reads the catalog from one source with a single attempt.
type Loader struct {
	kind      sourceKind
	path      string
	url       *url.URL
	http      *http.Client
	userAgent string
}

// Option customizes a Loader.
type Option func(*Loader)

// WithTimeout bounds the HTTP request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client used for remote sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.http = c
		}
	}
}

// NewLoader builds a Loader for source. See the package docs for accepted forms.
func NewLoader(source string, opts ...Option) (*Loader, error) {
	l := &Loader{
		http: &http.Client{
			Timeout: requestTimeout,
			// One request per process; idle connections would only linger.
			Transport: &http.Transport{DisableKeepAlives: true, Proxy: http.ProxyFromEnvironment},
		},
		userAgent: defaultUserAgent,
	}
	if err := l.parseSource(source); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Source returns a printable form of the configured source.
func (l *Loader) Source() string {
	switch l.kind {
	case sourceHTTP:
		return l.url.String()
	case sourceFile:
		return l.path
	default:
		return SourceBundled
	}
}

// Load reads and decodes the whole collection.
func (l *Loader) Load(ctx context.Context) ([]Character, error) {
	if l == nil {
		return nil, fmt.Errorf("loader is nil")
	}
	var (
		payload []byte
		err     error
	)
	switch l.kind {
	case sourceHTTP:
		payload, err = l.fetch(ctx)
	case sourceFile:
		payload, err = readFile(l.path)
	default:
		payload = bundledCatalog
	}
	if err != nil {
		return nil, err
	}
	return Decode(payload)
}

// Decode parses a catalog payload. Anything other than a JSON array is rejected.
// Within the array, entries that are not objects are dropped, and a field of
// the wrong type is left at its zero value so the rest of the record survives.
func Decode(payload []byte) ([]Character, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("decode catalog: %w: expected a JSON array", ErrMalformedCatalog)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w: %v", ErrMalformedCatalog, err)
	}

	records := make([]Character, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			continue
		}
		var ch Character
		if err := json.Unmarshal(item, &ch); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				continue
			}
		}
		records = append(records, ch)
	}
	return records, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog %s returned status %d", l.url.Redacted(), resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(body) > maxPayloadBytes {
		return nil, fmt.Errorf("read response: catalog exceeds %d bytes", maxPayloadBytes)
	}
	return body, nil
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if len(body) > maxPayloadBytes {
		return nil, fmt.Errorf("read catalog: file exceeds %d bytes", maxPayloadBytes)
	}
	return body, nil
}

func (l *Loader) parseSource(source string) error {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" || strings.EqualFold(trimmed, SourceBundled) {
		l.kind = sourceBundled
		return nil
	}

	if strings.Contains(trimmed, "://") {
		u, err := url.Parse(trimmed)
		if err != nil {
			return fmt.Errorf("parse catalog source %q: %w", source, err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			if u.Host == "" {
				return fmt.Errorf("parse catalog source %q: missing host", source)
			}
			l.kind = sourceHTTP
			l.url = u
			return nil
		case "file":
			trimmed = u.Path
		default:
			return fmt.Errorf("parse catalog source %q: unsupported scheme %q", source, u.Scheme)
		}
	}

	path, err := expandPath(trimmed)
	if err != nil {
		return fmt.Errorf("parse catalog source %q: %w", source, err)
	}
	l.kind = sourceFile
	l.path = path
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
