// Package checker validates the structural well-formedness of API description
// documents (OpenAPI 3.x or Swagger 2.0).
//
// The checker accepts a decoded document tree (a generic key-value mapping,
// typically produced by the loader package) and returns a Result with a
// pass/fail verdict plus human-readable diagnostics. It checks a small set of
// required-field rules and nothing more: no $ref resolution, no body typing,
// no full JSON Schema validation.
//
// Every check runs unconditionally, so a single call reports every detected
// problem at once. A document is valid exactly when no errors were found;
// warnings never affect the verdict. Checks never mutate the input document
// and hold no state between calls, so a single Checker is safe for
// concurrent use.
//
// # Quick Start
//
//	c := checker.New()
//	result, err := c.Check("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range result.Errors {
//		fmt.Println(e.String())
//	}
//
// Documents already decoded in memory skip the loader entirely:
//
//	result := checker.New().CheckDocument(doc)
//
// # Diagnostics
//
// Diagnostics carry their content in the message text; there is no error
// code taxonomy beyond the error/warning severity split. Consumers should
// match messages by substring or keyword, not by exact string.
package checker
