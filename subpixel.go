package smolscale

// Subpixel coordinates give NewFullSubpixel access to source rectangles
// that don't land on whole-pixel boundaries, in 1/256th-of-a-pixel units.

const subpixelShift = 8
const subpixelMul = 1 << subpixelShift

// ToSpx converts a whole-pixel coordinate to subpixel units.
func ToSpx(px int) int {
	return px * subpixelMul
}

// FromSpx converts a subpixel coordinate back to whole pixels, rounding up
// so a subpixel span always covers at least the pixels it partially
// touches.
func FromSpx(spx int) int {
	return (spx + subpixelMul - 1) / subpixelMul
}
