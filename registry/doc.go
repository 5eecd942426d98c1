/*
Package registry holds the process-lifetime binding declarations.

Declarations register once at startup, either programmatically or from a
YAML declarations file, and are validated at registration time so that
configuration mistakes never surface during an invocation:

	if err := registry.LoadFile("bindings.yaml"); err != nil {
	    log.Fatal(err)
	}
	decl, ok := registry.Get("orders-by-id")

The registry is thread-safe. Constructed runtime bindings live in
tablebind.Registry; this package only stores their declarations.
*/
package registry
