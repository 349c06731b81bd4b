package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOAS3InfoNotAMapping(t *testing.T) {
	c := New()
	doc := map[string]any{
		"openapi": "3.0.0",
		"info":    "just a string",
		"paths":   map[string]any{"/x": map[string]any{"get": map[string]any{}}},
	}

	result := c.CheckDocument(doc)

	assert.False(t, result.Valid)
	assert.True(t, containsMessage(result.Errors, "title"), "a non-mapping info cannot carry a title: %v", errorMessages(result.Errors))
}

func TestCheckOAS3InfoFindingsAreMutuallyExclusive(t *testing.T) {
	t.Run("missing info reports the section, not the title", func(t *testing.T) {
		result := New().CheckDocument(map[string]any{
			"openapi": "3.0.0",
			"paths":   map[string]any{},
		})

		assert.True(t, containsMessage(result.Errors, "requires an info section"))
		assert.False(t, containsMessage(result.Errors, "must contain title"))
	})

	t.Run("present info without title reports the title only", func(t *testing.T) {
		result := New().CheckDocument(map[string]any{
			"openapi": "3.0.0",
			"info":    map[string]any{"version": "1.0.0"},
			"paths":   map[string]any{},
		})

		assert.False(t, containsMessage(result.Errors, "requires an info section"))
		assert.True(t, containsMessage(result.Errors, "must contain title"))
	})
}

func TestCheckOAS3MethodDetection(t *testing.T) {
	tests := []struct {
		name    string
		item    map[string]any
		wantErr bool
	}{
		{"get", map[string]any{"get": map[string]any{}}, false},
		{"post", map[string]any{"post": map[string]any{}}, false},
		{"put", map[string]any{"put": map[string]any{}}, false},
		{"delete", map[string]any{"delete": map[string]any{}}, false},
		{"patch", map[string]any{"patch": map[string]any{}}, false},
		{"head", map[string]any{"head": map[string]any{}}, false},
		{"options", map[string]any{"options": map[string]any{}}, false},
		{"method among non-methods", map[string]any{"summary": "s", "get": map[string]any{}}, false},
		{"no methods", map[string]any{"summary": "s", "parameters": []any{}}, true},
		{"uppercase only", map[string]any{"GET": map[string]any{}, "POST": map[string]any{}}, true},
		{"trace is not recognized", map[string]any{"trace": map[string]any{}}, true},
		{"empty item", map[string]any{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().CheckDocument(map[string]any{
				"openapi": "3.0.0",
				"info":    map[string]any{"title": "T"},
				"paths":   map[string]any{"/x": tt.item},
			})

			got := containsMessage(result.Errors, "must define at least one HTTP method")
			assert.Equal(t, tt.wantErr, got, "errors: %v", errorMessages(result.Errors))
		})
	}
}

// TestCheckOAS3PathFindingOrder verifies findings come out in path order, so
// repeated runs over the same document render identically.
func TestCheckOAS3PathFindingOrder(t *testing.T) {
	result := New().CheckDocument(map[string]any{
		"openapi": "3.0.0",
		"info":    map[string]any{"title": "T"},
		"paths": map[string]any{
			"/c": map[string]any{},
			"/a": map[string]any{},
			"/b": map[string]any{},
		},
	})

	var paths []string
	for _, e := range result.Errors {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"paths./a", "paths./b", "paths./c"}, paths)
}

// TestCheckOAS3BadPathItemSkipsMethodCheck verifies a non-mapping path item
// reports only the object finding for that path.
func TestCheckOAS3BadPathItemSkipsMethodCheck(t *testing.T) {
	result := New().CheckDocument(map[string]any{
		"openapi": "3.0.0",
		"info":    map[string]any{"title": "T"},
		"paths":   map[string]any{"/x": 42},
	})

	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "must be an object")
	assert.Equal(t, 42, result.Errors[0].Value)
}

func TestCheckOAS3StrictMode(t *testing.T) {
	c := New()
	c.StrictMode = true
	doc := map[string]any{
		"openapi": "3.0.0",
		"info":    map[string]any{"title": "T"},
		"paths": map[string]any{
			"pets": map[string]any{"get": map[string]any{}},
		},
	}

	result := c.CheckDocument(doc)

	assert.True(t, result.Valid, "strict findings are advisory only: %v", errorMessages(result.Errors))
	assert.True(t, containsMessage(result.Warnings, "should start with '/'"), "warnings: %v", errorMessages(result.Warnings))
	assert.True(t, containsMessage(result.Warnings, "should contain a version"))
}

func TestCheckOAS3StrictModeQuietOnCompleteDocument(t *testing.T) {
	c := New()
	c.StrictMode = true
	doc := map[string]any{
		"openapi": "3.0.0",
		"info":    map[string]any{"title": "T", "version": "1.0.0"},
		"paths": map[string]any{
			"/pets": map[string]any{"get": map[string]any{}},
		},
	}

	result := c.CheckDocument(doc)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}
