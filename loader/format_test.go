package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{"negative", -1, "-1 B"},
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"one KiB", 1024, "1.0 KiB"},
		{"fraction KiB", 1536, "1.5 KiB"},
		{"MiB", 5 * 1024 * 1024, "5.0 MiB"},
		{"GiB", 2 * 1024 * 1024 * 1024, "2.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.size))
		})
	}
}

func TestDetectFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected SourceFormat
	}{
		{"openapi.json", SourceFormatJSON},
		{"openapi.yaml", SourceFormatYAML},
		{"openapi.yml", SourceFormatYAML},
		{"openapi.txt", SourceFormatUnknown},
		{"openapi", SourceFormatUnknown},
		{"dir/spec.v2.json", SourceFormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectFormatFromPath(tt.path))
		})
	}
}

func TestDetectFormatFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected SourceFormat
	}{
		{"json object", `{"openapi":"3.0.0"}`, SourceFormatJSON},
		{"json array", `[1,2]`, SourceFormatJSON},
		{"json with leading whitespace", "\n\t {\"a\":1}", SourceFormatJSON},
		{"yaml mapping", "openapi: 3.0.0\n", SourceFormatYAML},
		{"yaml scalar", "hello", SourceFormatYAML},
		{"empty", "", SourceFormatUnknown},
		{"whitespace only", " \n\t ", SourceFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectFormatFromContent([]byte(tt.content)))
		})
	}
}

func TestDetectFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		expected    SourceFormat
	}{
		{"application/json", SourceFormatJSON},
		{"application/json; charset=utf-8", SourceFormatJSON},
		{"Application/JSON", SourceFormatJSON},
		{"application/yaml", SourceFormatYAML},
		{"application/x-yaml", SourceFormatYAML},
		{"text/yaml", SourceFormatYAML},
		{"text/x-yaml; charset=utf-8", SourceFormatYAML},
		{"text/plain", SourceFormatUnknown},
		{"", SourceFormatUnknown},
	}

	for _, tt := range tests {
		t.Run("content-type "+tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectFormatFromContentType(tt.contentType))
		})
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("http://example.com/openapi.yaml"))
	assert.True(t, isURL("https://example.com/openapi.yaml"))
	assert.False(t, isURL("openapi.yaml"))
	assert.False(t, isURL("/abs/path/openapi.yaml"))
	assert.False(t, isURL("ftp://example.com/openapi.yaml"))
}
