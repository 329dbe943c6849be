/*
Package value wraps the primitive types which may appear as CSS property
values: booleans, numbers, strings, and space-joined lists thereof.

Overview

CSS property values arrive from very different places: string literals
("red"), numbers (opacity: 0), unit helpers ("100%"), or small lists
("10px 12px"). Type T is a closed union over these shapes, so that the
style-tree builder and the unit helpers can accept them interchangeably
and reduce them to their final textual form exactly once.

	v := value.Float(0.5)
	v = v.Append(value.Str("auto"))
	s := v.String()   // "0.5 auto"

A value of an unsupported dynamic type is rejected with ErrUnsupported;
the renderer surfaces this instead of emitting malformed CSS.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssgen.value'.
func tracer() tracing.Trace {
	return tracing.Select("cssgen.value")
}
