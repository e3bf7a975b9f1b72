/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder provides immutable prompt templates with explicit
// placeholder binding.
//
// Templates are written with {{name}} placeholders and constructed from
// string literals, so prompt text stays under developer control. Values are
// bound one at a time, each bind returning a new Template, and Render
// refuses to produce output while any placeholder is unbound:
//
//	tmpl := promptbuilder.MustNew(`Judge the document for {{query}}.
//
//	{{document}}`)
//
//	tmpl, err := tmpl.Bind("query", q)
//	...
//	tmpl, err = tmpl.BindJSON("document", doc)
//	...
//	text, err := tmpl.Render()
//
// Request types implement Bindable so that executors can bind request
// fields into the task template without knowing the field layout.
package promptbuilder
