/*
Package template implements the {name}-style placeholder templates used by
binding declarations for partition keys, row keys, and filters.

A template is compiled once, at binding registration time, and bound per
invocation against a caller-supplied context map:

	tmpl := template.MustCompile("ORDER#{region}")
	key, err := tmpl.Bind(map[string]string{"region": "west"})
	// key == "ORDER#west"

Lookups are verbatim and case-sensitive. A placeholder with no matching
context entry is an error, never an empty substitution. Placeholders do
not nest and values are inserted literally; the settings resolver (see
package settings) runs a second pass over the bound result, so %name%
tokens survive binding and resolve there.
*/
package template
