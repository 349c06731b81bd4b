package mcpserver

import (
	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/internal/options"
	"github.com/erraggy/oaslint/linterrors"
	"github.com/erraggy/oaslint/loader"
)

// specInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an API description file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an API description document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline API description content (JSON or YAML)"`
}

// resolve loads the document from whichever source is set.
// Lint work is cheap enough that no result caching is needed.
func (s specInput) resolve() (*loader.Document, error) {
	if err := options.ValidateSingleInputSource(
		"must provide one of file, url, or content",
		"must provide exactly one of file, url, or content",
		s.File != "", s.URL != "", s.Content != "",
	); err != nil {
		return nil, &linterrors.ConfigError{Option: "spec", Message: err.Error()}
	}

	l := loader.New()
	l.UserAgent = oaslint.UserAgent()

	switch {
	case s.File != "":
		return l.Load(s.File)
	case s.URL != "":
		return l.Load(s.URL)
	default:
		return l.LoadBytes([]byte(s.Content))
	}
}
