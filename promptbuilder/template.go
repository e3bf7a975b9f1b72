/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"unicode"
)

// literal only accepts untyped string constants, which keeps template text
// under developer control rather than flowing in from user input.
type literal string

// Template is an immutable prompt template with {{name}} placeholders.
// Bind methods return a new Template; Render fails while any placeholder
// remains unbound.
type Template struct {
	text     string
	bindings map[string]binding
}

// New parses a template literal and records its placeholders.
func New(text literal) (*Template, error) {
	bindings := make(map[string]binding)
	if _, err := walk(string(text), func(name string) (string, error) {
		if _, ok := bindings[name]; !ok {
			bindings[name] = &unbound{name: name}
		}
		return fmt.Sprintf("{{%s}}", name), nil
	}); err != nil {
		return nil, err
	}
	return &Template{text: string(text), bindings: bindings}, nil
}

// Placeholders returns the set of placeholder names in the template.
func (t *Template) Placeholders() map[string]struct{} {
	names := make(map[string]struct{}, len(t.bindings))
	for name := range t.bindings {
		names[name] = struct{}{}
	}
	return names
}

// Bind binds a plain string value to a placeholder.
func (t *Template) Bind(name, value string) (*Template, error) {
	return t.set(name, &stringBinding{val: value})
}

// BindJSON binds structured data to a placeholder as indented JSON.
func (t *Template) BindJSON(name string, data any) (*Template, error) {
	return t.set(name, &jsonBinding{data: data})
}

// BindYAML binds structured data to a placeholder as YAML.
func (t *Template) BindYAML(name string, data any) (*Template, error) {
	return t.set(name, &yamlBinding{data: data})
}

func (t *Template) set(name string, b binding) (*Template, error) {
	cur, ok := t.bindings[name]
	if !ok {
		return nil, fmt.Errorf("placeholder %q not found in template", name)
	}
	if _, open := cur.(*unbound); !open {
		return nil, fmt.Errorf("placeholder %q already bound", name)
	}
	next := &Template{text: t.text, bindings: maps.Clone(t.bindings)}
	next.bindings[name] = b
	return next, nil
}

// Render produces the final prompt text, failing on any unbound placeholder.
func (t *Template) Render() (string, error) {
	values := make(map[string]string, len(t.bindings))
	for name, b := range t.bindings {
		v, err := b.value()
		if err != nil {
			return "", err
		}
		values[name] = v
	}
	return walk(t.text, func(name string) (string, error) {
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("internal error: placeholder %q missing from values", name)
		}
		return v, nil
	})
}

// walk tokenizes the template text, invoking resolve for every placeholder
// and splicing its return value into the output.
func walk(text string, resolve func(name string) (string, error)) (string, error) {
	var out strings.Builder
	for len(text) > 0 {
		open := strings.Index(text, "{{")
		if open < 0 {
			out.WriteString(text)
			break
		}
		out.WriteString(text[:open])

		rest := text[open:]
		close := strings.Index(rest, "}}")
		if close < 0 {
			return "", errors.New("unclosed placeholder: missing '}}'")
		}

		name := strings.TrimSpace(rest[2:close])
		if !validName(name) {
			return "", fmt.Errorf("invalid placeholder name %q", name)
		}
		replacement, err := resolve(name)
		if err != nil {
			return "", err
		}
		out.WriteString(replacement)

		text = rest[close+2:]
	}
	return out.String(), nil
}

// validName accepts identifiers that start with a letter and contain only
// letters, digits, and underscores.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
