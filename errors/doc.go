/*
Package errors provides semantic error types for tablebind.

The package follows the sentinel + typed error pattern: each error kind has
a package-level sentinel usable with errors.Is, and a concrete struct type
carrying the details (the offending placeholder, setting key, property
name, or syntax offset).

Error kinds:

  - ConfigurationError: invalid binding declaration, raised at
    registration time only
  - SyntaxError: malformed {name} placeholder in a declared template,
    raised at compile time
  - UnresolvedPlaceholderError: a placeholder with no binding-context
    entry, raised per invocation
  - SettingNotFoundError: a %name% token with no configuration entry
  - ConversionError: a record value that cannot become a typed property
  - FilterSyntaxError: an unparseable filter expression

Errors coming back from the table-service collaborator are wrapped with
%w and otherwise propagated unchanged; they deliberately have no type
here. A singleton read that finds nothing is not an error at all.

Usage:

	_, err := tmpl.Bind(ctx)
	if errors.IsUnresolvedPlaceholder(err) {
	    var upe *errors.UnresolvedPlaceholderError
	    stderrors.As(err, &upe)
	    log.Printf("missing %s", upe.Placeholder)
	}
*/
package errors
