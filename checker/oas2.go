package checker

// checkOAS2 performs Swagger 2.0 specific checks.
// Swagger 2.0 gets no per-path method checks; the rule set covers the
// required top-level fields only.
func (c *Checker) checkOAS2(doc map[string]any, result *Result) {
	if _, hasInfo := doc["info"]; !hasInfo {
		c.addError(result, "info", "Swagger 2.0 requires an info section",
			withField("info"),
		)
	}

	if _, hasHost := doc["host"]; !hasHost {
		c.addError(result, "document", "Swagger 2.0 requires a host field",
			withField("host"),
		)
	}

	if c.StrictMode {
		if _, hasBasePath := doc["basePath"]; !hasBasePath {
			c.addWarning(result, "document", "Swagger 2.0 documents should define a basePath",
				withField("basePath"),
			)
		}
	}
}
