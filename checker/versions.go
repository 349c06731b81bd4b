package checker

import (
	"fmt"
	"strings"
)

// OASVersion is the version family of an API description document.
// The checker dispatches rule sets on the family alone; patch-level
// differences within a family never change which rules run.
type OASVersion int

const (
	// VersionUnknown indicates no recognized version family was detected
	VersionUnknown OASVersion = iota
	// VersionSwagger2 indicates a Swagger 2.0 document
	VersionSwagger2
	// VersionOpenAPI3 indicates an OpenAPI 3.x document
	VersionOpenAPI3
)

// String returns the display name of the version family.
func (v OASVersion) String() string {
	switch v {
	case VersionSwagger2:
		return "2.0"
	case VersionOpenAPI3:
		return "3.x"
	default:
		return "unknown"
	}
}

// versionFamily classifies a version string by literal prefix.
// Prefix matching matches the documented dispatch contract: "3.0.0" and
// "3.1.2" are both OpenAPI 3, while "30.0.0" is deliberately unknown.
func versionFamily(version string) OASVersion {
	switch {
	case strings.HasPrefix(version, "3."):
		return VersionOpenAPI3
	case strings.HasPrefix(version, "2."):
		return VersionSwagger2
	default:
		return VersionUnknown
	}
}

// versionString reads the declared version from the document: the openapi
// key preferentially, falling back to swagger when openapi is absent or
// blank. The second return reports whether either key exists at all.
//
// Non-string values never fault; a YAML document declaring `openapi: 3.0`
// decodes to a float and is stringified, landing in the unsupported-version
// branch downstream.
func versionString(doc map[string]any) (string, bool) {
	openapi, hasOpenAPI := doc["openapi"]
	swagger, hasSwagger := doc["swagger"]

	version := stringifyVersion(openapi)
	if version == "" {
		version = stringifyVersion(swagger)
	}
	return version, hasOpenAPI || hasSwagger
}

func stringifyVersion(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
