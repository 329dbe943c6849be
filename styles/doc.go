/*
Package styles holds the data model for CSS generation: ordered style
trees and the table of CSS property names.

Overview

A Tree is an ordered sequence of rules, each pairing a selector with a
body of property declarations. Bodies may nest sub-bodies, which is how
at-rules and keyframe blocks are modelled:

	tree := styles.Tree{}.
		Rule(".layer", styles.Body{}.
			Prop("background_color", "red").
			Prop("border", "1px solid green")).
		Rule("@media screen and (max-width: 900px)", styles.Body{}.
			Block(".layer", styles.Body{}.Prop("width", "100%")))

Trees have value semantics: builder calls return a new tree and never
mutate their receiver, so a tree handed to a renderer is immutable.
Insertion order is preserved throughout and duplicate selectors are
kept as separate rules.

Property declarations may name properties in their identifier form
(background_color) or their canonical CSS form (background-color);
PropertyName translates between the two.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styles

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssgen.styles'.
func tracer() tracing.Trace {
	return tracing.Select("cssgen.styles")
}
