/*
Package cssgen converts style trees into CSS text.

Overview

A style tree (package styles) is an ordered mapping of selectors to
property declarations, possibly nested for at-rules and animation
keyframes. cssgen walks such a tree and emits a single CSS string, in
either compact or indented ("pretty") form:

	tree := styles.Tree{}.
		Rule(".layer", styles.Body{}.
			Prop("background_color", "red").
			Prop("border", "1px solid green")).
		Rule(".hide .layer", styles.Body{}.Prop("opacity", 0))

	css, err := cssgen.CSS(tree)
	// ".layer{background-color:red;border:1px solid green;}.hide .layer{opacity:0;}"

Property keys may use the identifier spelling (background_color) or the
canonical CSS spelling; unknown keys pass through unchanged unless the
renderer is configured strict.

Optionally class selectors are rewritten with a namespace prefix, which
scopes the styles of a component against the rest of a page:

	css, err := cssgen.CSSNamespaced("frame", tree)
	// ".frame__layer{…}.frame__hide .frame__layer{…}"

Element selectors, id selectors and at-rule headers are never touched
by namespacing.

Rendering is a pure computation over an immutable input tree; renderers
are cheap values and may be used concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssgen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssgen'.
func tracer() tracing.Trace {
	return tracing.Select("cssgen")
}
