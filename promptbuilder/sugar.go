/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Must panics if err is non-nil. Intended for package-level template
// variables whose text is known to be valid:
//
//	var tmpl = promptbuilder.Must(promptbuilder.New(`Hello {{name}}`))
func Must(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}

// MustNew is shorthand for Must(New(...)).
func MustNew(text literal) *Template {
	return Must(New(text))
}

// MustBind is shorthand for Must(t.Bind(...)).
func (t *Template) MustBind(name, value string) *Template {
	return Must(t.Bind(name, value))
}

// MustBindJSON is shorthand for Must(t.BindJSON(...)).
func (t *Template) MustBindJSON(name string, data any) *Template {
	return Must(t.BindJSON(name, data))
}
