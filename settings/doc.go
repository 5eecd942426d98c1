/*
Package settings provides process-configuration lookup and the %name%
token resolver applied after template binding.

The Provider interface is the single capability the resolver needs;
implementations cover an in-memory map, the process environment, a flat
YAML file, and an ordered chain of providers:

	prov := settings.Chain{fileSettings, settings.Env{}}
	res := settings.NewResolver(prov)
	v, err := res.Resolve("%STORAGE_ACCOUNT%-orders")

Token syntax is deliberately disjoint from the {name} placeholders in
package template, so the two substitution passes can never collide.
*/
package settings
