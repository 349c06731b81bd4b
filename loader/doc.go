// Package loader loads API description documents into untyped key-value trees.
//
// The loader is the deserializing collaborator for the checker package: it
// reads a document from a file, URL, reader, or byte slice, detects whether
// the source is JSON or YAML, and decodes it into a generic tree
// (map[string]any / []any / scalars) that the checker reads without ever
// mutating. It performs no structural interpretation of its own.
//
// # Quick Start
//
//	l := loader.New()
//	doc, err := l.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("loaded %s (%s, %s)\n", doc.SourcePath, doc.SourceFormat, loader.FormatBytes(doc.SourceSize))
//
// URLs work the same way as file paths:
//
//	doc, err := l.Load("https://example.com/api/openapi.yaml")
//
// Decoding always goes through YAML, which is a strict superset of JSON, so
// a single decode path handles both formats. Format detection only affects
// the reported SourceFormat and CLI presentation.
package loader
