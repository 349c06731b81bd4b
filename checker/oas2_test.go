package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOAS2Valid(t *testing.T) {
	result := New().CheckDocument(map[string]any{
		"swagger": "2.0",
		"info":    map[string]any{"title": "T"},
		"host":    "api.example.com",
		"paths": map[string]any{
			"/pets": map[string]any{"get": map[string]any{}},
		},
	})

	assert.True(t, result.Valid, "errors: %v", errorMessages(result.Errors))
	assert.Empty(t, result.Warnings)
}

func TestCheckOAS2MissingInfo(t *testing.T) {
	result := New().CheckDocument(map[string]any{
		"swagger": "2.0",
		"host":    "api.example.com",
		"paths":   map[string]any{},
	})

	assert.False(t, result.Valid)
	assert.True(t, containsMessage(result.Errors, "Swagger 2.0 requires an info section"), "errors: %v", errorMessages(result.Errors))
}

func TestCheckOAS2MissingInfoAndHost(t *testing.T) {
	result := New().CheckDocument(map[string]any{
		"swagger": "2.0",
		"paths":   map[string]any{},
	})

	assert.False(t, result.Valid)
	assert.True(t, containsMessage(result.Errors, "info section"))
	assert.True(t, containsMessage(result.Errors, "host field"))
}

// TestCheckOAS2NoMethodChecks verifies the Swagger 2 rule set performs no
// per-path method checks; a path item without any method keys stays valid.
func TestCheckOAS2NoMethodChecks(t *testing.T) {
	result := New().CheckDocument(map[string]any{
		"swagger": "2.0",
		"info":    map[string]any{"title": "T"},
		"host":    "api.example.com",
		"paths": map[string]any{
			"/pets": map[string]any{"x-custom": true},
		},
	})

	assert.True(t, result.Valid, "errors: %v", errorMessages(result.Errors))
}

func TestCheckOAS2StrictMode(t *testing.T) {
	c := New()
	c.StrictMode = true

	result := c.CheckDocument(map[string]any{
		"swagger": "2.0",
		"info":    map[string]any{"title": "T"},
		"host":    "api.example.com",
		"paths":   map[string]any{"/pets": map[string]any{"get": map[string]any{}}},
	})

	assert.True(t, result.Valid)
	assert.True(t, containsMessage(result.Warnings, "basePath"), "warnings: %v", errorMessages(result.Warnings))
}
