// Package errors provides coded, structured errors for kview.
//
// Every contract violation the toolkit reports carries a stable code (for
// example "E101") mapped in a registry to a category, a short message, a
// longer explanation and a documentation link. Callers add context with the
// With* builders and render the result for a terminal or as JSON with Fprint.
//
// # Error Categories
//
//   - runtime: component tree misuse (unmounted widgets, disposed roots)
//   - layout: invalid layout container shape
//   - config: kview.json / kview.yaml problems
//   - protocol: malformed frames between browser and server
//   - export: static export failures
//
// # Usage
//
//	el, err := w.RequireElement()
//	if err != nil {
//	    errors.Fprint(os.Stderr, err, errors.Style{Color: true})
//	}
//
//	err := errors.New("E120").
//	    WithLocation("kview.yaml", 4, 3).
//	    WithSuggestion("Check the indentation of the server section")
package errors
