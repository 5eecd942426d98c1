/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settings

import (
	"strings"

	"github.com/suparena/tablebind/errors"
)

// Resolver substitutes %name%-style tokens from a Provider. It is the
// second resolution pass, applied to strings that already went through
// template binding; the deliberately disjoint delimiter syntax means
// binding-data values can contain '{' and '}' without being re-resolved.
type Resolver struct {
	Provider Provider
}

// NewResolver returns a Resolver over the given provider.
func NewResolver(p Provider) *Resolver {
	return &Resolver{Provider: p}
}

// Resolve replaces every %name% token with the provider's value for name.
// "%%" produces a literal '%'. A token whose key the provider does not
// know fails with a SettingNotFoundError. Strings without tokens are
// returned unchanged, so Resolve is idempotent on fully resolved input.
func (r *Resolver) Resolve(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}

	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			out.WriteByte(s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '%' {
			out.WriteByte('%')
			i += 2
			continue
		}
		end := strings.IndexByte(s[i+1:], '%')
		if end < 0 {
			// No closing delimiter: not a token, keep the literal tail.
			out.WriteString(s[i:])
			break
		}
		key := s[i+1 : i+1+end]
		val, ok := r.Provider.Lookup(key)
		if !ok {
			return "", errors.NewSettingNotFoundError(key)
		}
		out.WriteString(val)
		i += end + 2
	}
	return out.String(), nil
}
