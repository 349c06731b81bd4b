package loader

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaslint/linterrors"
)

// SourceFormat identifies the serialization format of a loaded document.
type SourceFormat string

const (
	// SourceFormatJSON indicates the source was JSON
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates the source was YAML
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatUnknown indicates the format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// Document is a decoded API description document plus source metadata.
// Data holds the untyped key-value tree; for well-formed documents it is a
// map[string]any, but the loader makes no such guarantee (a YAML source may
// decode to a sequence or scalar, which the checker reports as an error).
type Document struct {
	// SourcePath is the file path or URL the document was loaded from.
	// For LoadBytes/LoadReader it is a synthetic name such as "LoadBytes.yaml".
	SourcePath string
	// SourceFormat is the detected serialization format
	SourceFormat SourceFormat
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// Data is the decoded document tree
	Data any
}

// Loader reads and decodes API description documents.
// The zero value is usable; New applies the defaults explicitly.
type Loader struct {
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to "oaslint/<version>" if not set.
	UserAgent string
	// InsecureSkipVerify disables TLS certificate verification for URL fetches.
	// Use with caution - only enable for testing or internal servers with self-signed certs
	InsecureSkipVerify bool
	// HTTPClient is used for URL fetches when set. When nil, a default
	// client with a 30 second timeout is used.
	// When set, InsecureSkipVerify is ignored (configure TLS on your client's transport).
	HTTPClient *http.Client
	// Logger receives structured diagnostics. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Loader with default settings.
func New() *Loader {
	return &Loader{}
}

func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// Load loads a document from a file path or an http(s) URL.
func (l *Loader) Load(path string) (*Document, error) {
	loadStart := time.Now()

	var (
		data        []byte
		contentType string
		err         error
	)
	if isURL(path) {
		data, contentType, err = l.fetchURL(path)
		if err != nil {
			return nil, linterrors.NewParseError(path, "", "failed to fetch URL", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, linterrors.NewParseError(path, "", "failed to read file", err)
		}
	}
	loadTime := time.Since(loadStart)

	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown && isURL(path) {
		format = detectFormatFromContentType(contentType)
	}
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	doc, err := l.decode(data, path, format)
	if err != nil {
		return nil, err
	}
	doc.LoadTime = loadTime
	l.log().Debug("loaded document",
		"path", path, "format", string(doc.SourceFormat), "size", doc.SourceSize)
	return doc, nil
}

// LoadReader loads a document from an io.Reader.
// SourcePath is set to LoadReader.yaml or LoadReader.json based on the detected format.
func (l *Loader) LoadReader(r io.Reader) (*Document, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, linterrors.NewParseError("LoadReader", "", "failed to read data", err)
	}

	doc, err := l.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	doc.LoadTime = loadTime
	doc.SourcePath = "LoadReader." + string(doc.SourceFormat)
	return doc, nil
}

// LoadBytes loads a document from a byte slice already in memory.
// SourcePath is set to LoadBytes.yaml or LoadBytes.json based on the detected format.
func (l *Loader) LoadBytes(data []byte) (*Document, error) {
	format := detectFormatFromContent(data)
	sourcePath := "LoadBytes.yaml"
	if format == SourceFormatJSON {
		sourcePath = "LoadBytes.json"
	}
	return l.decode(data, sourcePath, format)
}

// decode unmarshals data into the untyped document tree.
// YAML is a superset of JSON, so both formats share a single decode path.
func (l *Loader) decode(data []byte, sourcePath string, format SourceFormat) (*Document, error) {
	if len(trimLeadingWhitespace(data)) == 0 {
		return nil, linterrors.NewParseError(sourcePath, string(format), "document is empty", nil)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, linterrors.NewParseError(sourcePath, string(format), "failed to decode document", err)
	}

	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	return &Document{
		SourcePath:   sourcePath,
		SourceFormat: format,
		SourceSize:   int64(len(data)),
		Data:         raw,
	}, nil
}

// fetchURL fetches content from a URL and returns the bytes and Content-Type header.
func (l *Loader) fetchURL(urlStr string) ([]byte, string, error) {
	client := l.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
		if l.InsecureSkipVerify {
			client.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // User explicitly requested insecure mode
			}
		}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent())

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("loader: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to read response body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func (l *Loader) userAgent() string {
	if l.UserAgent != "" {
		return l.UserAgent
	}
	return defaultUserAgent()
}
