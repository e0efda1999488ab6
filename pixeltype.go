package smolscale

import "github.com/smolscale/smolscale/internal/dsp"

// PixelType names a packed pixel layout: channel order, bit depth, and
// alpha association. The ordinals are part of the public ABI and must
// never be renumbered.
type PixelType int

const (
	RGBA8Premultiplied PixelType = iota
	BGRA8Premultiplied
	ARGB8Premultiplied
	ABGR8Premultiplied

	RGBA8Unassociated
	BGRA8Unassociated
	ARGB8Unassociated
	ABGR8Unassociated

	RGB8
	BGR8

	numPixelTypes
)

func (p PixelType) valid() bool {
	return p >= 0 && p < numPixelTypes
}

// BytesPerPixel returns the packed storage size of one pixel of this type:
// 3 for RGB8/BGR8, 4 otherwise.
func (p PixelType) BytesPerPixel() int {
	return dsp.PixelMetaTable[p].BytesPerPixel()
}

// String returns a human-readable name, used in error messages and by the
// CLI's --help output.
func (p PixelType) String() string {
	switch p {
	case RGBA8Premultiplied:
		return "rgba8-premultiplied"
	case BGRA8Premultiplied:
		return "bgra8-premultiplied"
	case ARGB8Premultiplied:
		return "argb8-premultiplied"
	case ABGR8Premultiplied:
		return "abgr8-premultiplied"
	case RGBA8Unassociated:
		return "rgba8-unassociated"
	case BGRA8Unassociated:
		return "bgra8-unassociated"
	case ARGB8Unassociated:
		return "argb8-unassociated"
	case ABGR8Unassociated:
		return "abgr8-unassociated"
	case RGB8:
		return "rgb8"
	case BGR8:
		return "bgr8"
	default:
		return "invalid-pixel-type"
	}
}
