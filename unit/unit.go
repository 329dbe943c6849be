package unit

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssgen/value"
)

// suffixed appends unitName to every given scalar and joins the results
// by single spaces. Arguments of unsupported types fall back to their
// fmt representation; units are a convenience layer and never fail.
func suffixed(unitName string, vs []interface{}) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		t, err := value.Of(v)
		if err != nil {
			tracer().Errorf("unit %q: %v", unitName, err)
			parts = append(parts, fmt.Sprintf("%v%s", v, unitName))
			continue
		}
		if t.IsList() {
			for _, e := range t.Elements() {
				parts = append(parts, e.String()+unitName)
			}
			continue
		}
		parts = append(parts, t.String()+unitName)
	}
	return strings.Join(parts, " ")
}

// Px measures in pixels (1px = 1/96th of 1in).
//
//     unit.Px(10)    // "10px"
func Px(vs ...interface{}) string { return suffixed("px", vs) }

// Q measures in quarter-millimeters (1q = 1/40th of 1cm).
func Q(vs ...interface{}) string { return suffixed("q", vs) }

// Mm measures in millimeters.
func Mm(vs ...interface{}) string { return suffixed("mm", vs) }

// Cm measures in centimeters.
func Cm(vs ...interface{}) string { return suffixed("cm", vs) }

// Pt measures in points (1pt = 1/72 of 1in).
func Pt(vs ...interface{}) string { return suffixed("pt", vs) }

// Pc measures in picas (1pc = 12pt).
func Pc(vs ...interface{}) string { return suffixed("pc", vs) }

// In measures in inches (1in = 96px = 2.54cm).
func In(vs ...interface{}) string { return suffixed("in", vs) }

// Em is relative to the font size of the element (2em means two times
// the size of the current font).
func Em(vs ...interface{}) string { return suffixed("em", vs) }

// Ex is relative to the x-height of the current font.
func Ex(vs ...interface{}) string { return suffixed("ex", vs) }

// Ch is relative to the width of the "0" (zero) glyph.
func Ch(vs ...interface{}) string { return suffixed("ch", vs) }

// Rem is relative to the font size of the root element.
func Rem(vs ...interface{}) string { return suffixed("rem", vs) }

// Vw is relative to 1% of the width of the viewport.
func Vw(vs ...interface{}) string { return suffixed("vw", vs) }

// Vh is relative to 1% of the height of the viewport.
func Vh(vs ...interface{}) string { return suffixed("vh", vs) }

// Percent renders a percentage.
//
//     unit.Percent(100)  // "100%"
func Percent(vs ...interface{}) string { return suffixed("%", vs) }

// Deg represents an angle in degrees,
// https://developer.mozilla.org/en-US/docs/Web/CSS/angle.
func Deg(vs ...interface{}) string { return suffixed("deg", vs) }

// Rad represents an angle in radians.
func Rad(vs ...interface{}) string { return suffixed("rad", vs) }

// Grad represents an angle in gradians.
func Grad(vs ...interface{}) string { return suffixed("grad", vs) }

// Turn represents an angle as a number of turns; one full circle is
// 1turn.
func Turn(vs ...interface{}) string { return suffixed("turn", vs) }

// S represents a time in seconds,
// https://developer.mozilla.org/en-US/docs/Web/CSS/time.
func S(vs ...interface{}) string { return suffixed("s", vs) }

// Ms represents a time in milliseconds.
func Ms(vs ...interface{}) string { return suffixed("ms", vs) }
