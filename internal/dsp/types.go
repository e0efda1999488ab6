// Package dsp implements the resampling engine: filter selection, fixed-point
// precalculation, the horizontal/vertical filter families, and the
// unpack/pack/repack conversion matrix. It has no knowledge of file formats,
// command-line flags, or any other concern external to pixel resampling.
package dsp

// Storage is the internal wide-pixel accumulator width. The resampling
// pipeline always operates in Storage64 or Storage128; Storage24/Storage32
// only describe packed byte layouts at the unpack/pack boundary.
type Storage int

const (
	Storage24 Storage = iota
	Storage32
	Storage64
	Storage128

	storageMax
)

// Filter identifies which algorithm family resamples one axis.
type Filter int

const (
	FilterCopy Filter = iota
	FilterOne
	FilterBilinear0H
	FilterBilinear1H
	FilterBilinear2H
	FilterBilinear3H
	FilterBilinear4H
	FilterBilinear5H
	FilterBilinear6H
	FilterBox

	filterMax
)

// Halvings returns the number of post-interpolation 2:1 averaging passes
// a bilinear filter performs. Only meaningful for FilterBilinearNH values.
func (f Filter) Halvings() int {
	return int(f - FilterBilinear0H)
}

// Alpha identifies the alpha-association state of a wide-pixel row.
type Alpha int

const (
	AlphaUnassociated Alpha = iota
	AlphaPremultiplied
	AlphaPremultiplied16 // premultiplied, 16-bit channels (used under linearize-sRGB)

	alphaMax
)

// Gamma identifies whether channel values are sRGB-compressed or linear.
type Gamma int

const (
	GammaSRGB Gamma = iota
	GammaLinear

	gammaMax
)

// Order is a channel permutation: Order[i] names which canonical channel
// (0=R, 1=G, 2=B, 3=A) occupies storage position i. Three-channel orders
// leave position 3 unused (set to 3, i.e. alpha's canonical slot, but never
// read since N is 3).
type Order struct {
	Channels [4]uint8
	N        int // 3 or 4
}

// PixelMeta is per-pixel-type metadata used to drive unpack/pack/repack
// dispatch. It mirrors SmolPixelTypeMeta from the original C source:
// storage width, alpha association, and channel order.
type PixelMeta struct {
	Storage Storage // Storage24 or Storage32
	Alpha   Alpha   // alphaMax sentinel unused here; 3-channel types carry AlphaUnassociated (ignored)
	Order   Order
	HasAlpha bool
}

// Pixel type ordinals, matching the public API's ABI order exactly
// (spec.md §6): RGBA8-pre, BGRA8-pre, ARGB8-pre, ABGR8-pre, RGBA8-un,
// BGRA8-un, ARGB8-un, ABGR8-un, RGB8, BGR8.
const (
	PixelRGBA8Pre = iota
	PixelBGRA8Pre
	PixelARGB8Pre
	PixelABGR8Pre
	PixelRGBA8Un
	PixelBGRA8Un
	PixelARGB8Un
	PixelABGR8Un
	PixelRGB8
	PixelBGR8

	NumPixelTypes
)

func order4(a, b, c, d uint8) Order { return Order{Channels: [4]uint8{a, b, c, d}, N: 4} }
func order3(a, b, c uint8) Order    { return Order{Channels: [4]uint8{a, b, c, 3}, N: 3} }

// PixelMetaTable is indexed by the Pixel* ordinals above.
var PixelMetaTable = [NumPixelTypes]PixelMeta{
	PixelRGBA8Pre: {Storage: Storage32, Alpha: AlphaPremultiplied, HasAlpha: true, Order: order4(0, 1, 2, 3)},
	PixelBGRA8Pre: {Storage: Storage32, Alpha: AlphaPremultiplied, HasAlpha: true, Order: order4(2, 1, 0, 3)},
	PixelARGB8Pre: {Storage: Storage32, Alpha: AlphaPremultiplied, HasAlpha: true, Order: order4(3, 0, 1, 2)},
	PixelABGR8Pre: {Storage: Storage32, Alpha: AlphaPremultiplied, HasAlpha: true, Order: order4(3, 2, 1, 0)},
	PixelRGBA8Un:  {Storage: Storage32, Alpha: AlphaUnassociated, HasAlpha: true, Order: order4(0, 1, 2, 3)},
	PixelBGRA8Un:  {Storage: Storage32, Alpha: AlphaUnassociated, HasAlpha: true, Order: order4(2, 1, 0, 3)},
	PixelARGB8Un:  {Storage: Storage32, Alpha: AlphaUnassociated, HasAlpha: true, Order: order4(3, 0, 1, 2)},
	PixelABGR8Un:  {Storage: Storage32, Alpha: AlphaUnassociated, HasAlpha: true, Order: order4(3, 2, 1, 0)},
	PixelRGB8:     {Storage: Storage24, Alpha: AlphaUnassociated, HasAlpha: false, Order: order3(0, 1, 2)},
	PixelBGR8:     {Storage: Storage24, Alpha: AlphaUnassociated, HasAlpha: false, Order: order3(2, 1, 0)},
}

// BytesPerPixel returns the packed storage size for a pixel type: 3 or 4.
func (m PixelMeta) BytesPerPixel() int {
	if m.Storage == Storage24 {
		return 3
	}
	return 4
}
