/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package template

import (
	"strings"

	"github.com/suparena/tablebind/errors"
)

// Template is a compiled {name}-style key or filter template.
// Compile once at binding registration, Bind per invocation.
type Template struct {
	source   string
	segments []segment
}

// segment is either a literal run or a single placeholder reference.
type segment struct {
	literal     string
	placeholder string
}

// Compile parses a template string into a Template. It fails with a
// SyntaxError on malformed placeholder syntax: an unterminated '{', an
// empty placeholder name, a nested '{', or a '}' outside a placeholder.
func Compile(source string) (*Template, error) {
	t := &Template{source: source}

	var literal strings.Builder
	for i := 0; i < len(source); {
		switch source[i] {
		case '{':
			end := strings.IndexByte(source[i+1:], '}')
			if end < 0 {
				return nil, errors.NewSyntaxError(source, i, "unterminated placeholder")
			}
			name := source[i+1 : i+1+end]
			if name == "" {
				return nil, errors.NewSyntaxError(source, i, "empty placeholder name")
			}
			if j := strings.IndexByte(name, '{'); j >= 0 {
				return nil, errors.NewSyntaxError(source, i+1+j, "nested placeholder delimiter")
			}
			if literal.Len() > 0 {
				t.segments = append(t.segments, segment{literal: literal.String()})
				literal.Reset()
			}
			t.segments = append(t.segments, segment{placeholder: name})
			i += end + 2
		case '}':
			return nil, errors.NewSyntaxError(source, i, "unmatched closing delimiter")
		default:
			literal.WriteByte(source[i])
			i++
		}
	}
	if literal.Len() > 0 {
		t.segments = append(t.segments, segment{literal: literal.String()})
	}
	return t, nil
}

// MustCompile is like Compile but panics on error. Intended for templates
// known to be well formed at program start.
func MustCompile(source string) *Template {
	t, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return t
}

// Source returns the original template string.
func (t *Template) Source() string { return t.source }

// Names returns the placeholder names referenced by the template, in
// order of first appearance.
func (t *Template) Names() []string {
	var names []string
	seen := map[string]bool{}
	for _, s := range t.segments {
		if s.placeholder != "" && !seen[s.placeholder] {
			seen[s.placeholder] = true
			names = append(names, s.placeholder)
		}
	}
	return names
}

// HasPlaceholders reports whether the template references any placeholder.
func (t *Template) HasPlaceholders() bool {
	for _, s := range t.segments {
		if s.placeholder != "" {
			return true
		}
	}
	return false
}

// Bind substitutes context values for every placeholder and returns the
// fully resolved string. Placeholder names are looked up verbatim
// (case-sensitive, no nested resolution). A missing context entry fails
// with an UnresolvedPlaceholderError naming the placeholder; there is no
// default substitution. A template with zero placeholders binds to
// itself unchanged.
func (t *Template) Bind(context map[string]string) (string, error) {
	if !t.HasPlaceholders() {
		return t.source, nil
	}

	var out strings.Builder
	out.Grow(len(t.source))
	for _, s := range t.segments {
		if s.placeholder == "" {
			out.WriteString(s.literal)
			continue
		}
		val, ok := context[s.placeholder]
		if !ok {
			return "", errors.NewUnresolvedPlaceholderError(s.placeholder)
		}
		out.WriteString(val)
	}
	return out.String(), nil
}
