/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Bindable is implemented by request types that know how to bind their
// fields into a prompt template. Executors call Bind before rendering.
type Bindable interface {
	// Bind returns a new template with the receiver's values bound.
	Bind(tmpl *Template) (*Template, error)
}

// Noop passes the template through unchanged.
type Noop struct{}

// Bind implements Bindable.
func (Noop) Bind(tmpl *Template) (*Template, error) {
	return tmpl, nil
}
