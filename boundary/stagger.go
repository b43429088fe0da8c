package boundary

import "github.com/notargets/gobcs/mesh"

// resolveStagger classifies a field's sample placement relative to the
// outward boundary direction (bx, by). It is invariant along a boundary line
// of fixed orientation, so it runs once per Apply call.
//
//	stagger  0: not staggered, or staggered orthogonal to the boundary
//	stagger  1: staggered in the direction of the boundary normal
//	stagger -1: staggered opposite the boundary normal
//
// The returned offsets start as (bx, by) and are nudged to -1 on an axis
// where the field is staggered but the boundary offset is exactly 0, so that
// the guard/interior midpoint used for generator coordinates still straddles
// the sample line. Low-side staggering (XLow, YLow) shifts samples in the
// negative direction.
func resolveStagger(bx, by int, loc mesh.Location) (xOffset, yOffset, stagger int) {
	xOffset, yOffset = bx, by
	if loc == mesh.XLow {
		if xOffset == 0 {
			xOffset = -1
		} else if xOffset < 0 {
			stagger = -1
		} else {
			stagger = 1
		}
	}
	if loc == mesh.YLow {
		if yOffset == 0 {
			yOffset = -1
		} else if yOffset < 0 {
			stagger = -1
		} else {
			stagger = 1
		}
	}
	return
}
