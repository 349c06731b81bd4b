package checker

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// httpMethods are the recognized path item operation keys.
// Matching is case-sensitive: OAS requires the lowercase forms, so a path
// object carrying only "GET" has no recognized method.
var httpMethods = []string{"get", "post", "put", "delete", "patch", "head", "options"}

// checkOAS3 performs OpenAPI 3.x specific checks
func (c *Checker) checkOAS3(doc map[string]any, result *Result) {
	c.checkOAS3Info(doc, result)
	c.checkOAS3Paths(doc, result)
}

// checkOAS3Info checks the info object in OpenAPI 3.x
func (c *Checker) checkOAS3Info(doc map[string]any, result *Result) {
	info, hasInfo := doc["info"]
	if !hasInfo {
		c.addError(result, "info", "OpenAPI 3.0 requires an info section",
			withField("info"),
		)
		return
	}

	// The title check only runs when info itself is present; the two
	// findings are mutually exclusive per call. A non-mapping info value
	// cannot carry a title and reports the same finding.
	infoMap, _ := info.(map[string]any)
	if _, hasTitle := infoMap["title"]; !hasTitle {
		c.addError(result, "info", "info section must contain title",
			withField("title"),
		)
	}

	if c.StrictMode {
		if _, hasVersion := infoMap["version"]; !hasVersion {
			c.addWarning(result, "info", "info section should contain a version",
				withField("version"),
			)
		}
	}
}

// checkOAS3Paths checks each path item in OpenAPI 3.x.
// The paths section may legitimately be absent here; its presence is
// checked independently, so this loop just tolerates absence.
func (c *Checker) checkOAS3Paths(doc map[string]any, result *Result) {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return
	}

	// Sorted iteration keeps finding order deterministic across calls.
	for _, path := range slices.Sorted(maps.Keys(paths)) {
		pathPrefix := "paths." + path

		item, ok := paths[path].(map[string]any)
		if !ok {
			c.addError(result, pathPrefix, fmt.Sprintf("Path '%s' must be an object", path),
				withValue(paths[path]),
			)
			continue
		}

		if !hasHTTPMethod(item) {
			c.addError(result, pathPrefix, fmt.Sprintf("Path '%s' must define at least one HTTP method", path))
		}

		if c.StrictMode && !strings.HasPrefix(path, "/") {
			c.addWarning(result, pathPrefix, fmt.Sprintf("Path '%s' should start with '/'", path),
				withValue(path),
			)
		}
	}
}

// hasHTTPMethod reports whether the path item defines at least one
// recognized HTTP method key.
func hasHTTPMethod(item map[string]any) bool {
	for _, method := range httpMethods {
		if _, ok := item[method]; ok {
			return true
		}
	}
	return false
}
