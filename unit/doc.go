/*
Package unit provides helpers for CSS units such as px, %, em, deg.

Overview

Every helper appends its unit suffix to a scalar, or to each element of
a list of scalars, and returns the finished CSS value string:

	unit.Px(10)        // "10px"
	unit.Px(10, 12)    // "10px 12px"
	unit.Percent(100)  // "100%"

The helpers accept anything package value accepts; see the MDN overview
of values and units,
https://developer.mozilla.org/en-US/docs/Learn/CSS/Building_blocks/Values_and_units.

Additionally the package bridges the typesetting dimensions of
tyse/core into CSS value strings (Du, Pct).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssgen.unit'.
func tracer() tracing.Trace {
	return tracing.Select("cssgen.unit")
}
