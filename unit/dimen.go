package unit

import (
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Du renders a typesetting dimension as a CSS length in points.
// Dimensions are the currency of the typesetting engine; converting
// them through Du lets layout results feed directly into style trees.
//
//     unit.Du(10 * dimen.PT)  // "10pt"
func Du(d dimen.DU) string {
	pts := float64(d) / float64(dimen.PT)
	return strconv.FormatFloat(pts, 'f', -1, 64) + "pt"
}

// Pct renders a typesetting percentage as a CSS percentage value.
func Pct(p percent.Percent) string {
	return p.String()
}
