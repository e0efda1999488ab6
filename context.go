package smolscale

import (
	"fmt"

	"github.com/smolscale/smolscale/internal/dsp"
)

// Context holds everything about one scaling operation that doesn't
// depend on the pixel buffers it will eventually be run against: source
// and destination dimensions, pixel formats, flags, and the precalculated
// filter tables. It is immutable after construction and safe to share
// read-only across goroutines; each Batch call builds its own scratch
// state (see RunBatch64/RunBatch128 in internal/dsp/engine.go) so concurrent callers never touch
// shared mutable state.
type Context struct {
	widthIn, heightIn   int
	rowstrideIn         int
	pixelIn             PixelType
	widthOut, heightOut int
	rowstrideOut        int
	pixelOut            PixelType
	flags               Flags

	hParams dsp.FilterParams
	vParams dsp.FilterParams

	bilinearX []dsp.BilinearSample
	bilinearY []dsp.BilinearSample
	boxX      []dsp.BoxSpan
	boxY      []dsp.BoxSpan
	spanMulX  uint32
	spanMulY  uint32

	// opacityFirstX/opacityLastX/opacityFirstY/opacityLastY multiply the
	// first/last output column and row (0-256, 256 meaning fully opaque,
	// i.e. a no-op) after filtering, letting a caller feather the edges of
	// a scaled sub-rectangle instead of presenting a hard cut. 256 unless
	// set through NewFullSubpixel.
	opacityFirstX, opacityLastX uint16
	opacityFirstY, opacityLastY uint16

	// originXPx/originYPx is the whole-pixel part of a subpixel source
	// rectangle's origin: the fractional remainder is folded into the
	// bilinear/box precalc tables instead (see newContext), but the raw
	// pixel buffer read still has to skip this many whole columns/rows
	// before reading the sub-rectangle's own WidthIn/HeightIn pixels.
	originXPx, originYPx int

	// minRowsIn is originYPx+heightIn, the number of source rows Batch
	// must find in pixelsIn starting at row 0 -- for a plain (non-subpixel)
	// Context this equals heightIn, but a sub-rectangle's buffer has
	// originYPx extra rows above the window Batch actually samples, and
	// the buffer-size check in Batch has to account for those too.
	minRowsIn int

	impl dsp.Implementation
}

// New constructs a Context scaling a widthIn x heightIn image of pixelIn
// pixels to widthOut x heightOut pixels of pixelOut, using tightly-packed
// rows (rowstride == width * bytes-per-pixel) on both sides and no flags.
func New(pixelIn PixelType, widthIn, heightIn int, pixelOut PixelType, widthOut, heightOut int) (*Context, error) {
	return NewFull(pixelIn, widthIn, heightIn, widthIn*pixelIn.BytesPerPixel(),
		pixelOut, widthOut, heightOut, widthOut*pixelOut.BytesPerPixel(), 0)
}

// NewFull is New with explicit row strides (for sub-rect scaling into or
// out of a larger buffer) and flags.
func NewFull(pixelIn PixelType, widthIn, heightIn, rowstrideIn int,
	pixelOut PixelType, widthOut, heightOut, rowstrideOut int, flags Flags) (*Context, error) {
	return newContext(pixelIn, widthIn, heightIn, rowstrideIn, 0, 0, 0, 0,
		pixelOut, widthOut, heightOut, rowstrideOut, flags, edgeOpacityDefault)
}

// EdgeOpacity bundles the first/last-pixel and first/last-row opacity
// multipliers NewFullSubpixel accepts, in 1/256th units (256 = fully
// opaque, the default; 0 = fully transparent). Source tiles that are
// stitched together (e.g. the page-generation harness in the original
// C sources) use this to feather adjoining edges instead of presenting a
// hard seam.
type EdgeOpacity struct {
	FirstX, LastX uint16
	FirstY, LastY uint16
}

// edgeOpacityDefault is "fully opaque everywhere", i.e. a no-op.
var edgeOpacityDefault = EdgeOpacity{FirstX: 256, LastX: 256, FirstY: 256, LastY: 256}

// NewFullSubpixel is NewFull, except the source rectangle is specified in
// 1/256th-of-a-pixel units (see ToSpx/FromSpx), allowing a scale operation
// to sample a source region that doesn't land on whole-pixel boundaries,
// and edge opacities may feather the first/last output column and row.
// srcXSpx/srcYSpx/srcWidthSpx/srcHeightSpx describe the source rectangle;
// widthIn/heightIn/rowstrideIn still describe the full backing buffer. Pass
// EdgeOpacity{256, 256, 256, 256} (the value NewFull uses) for no edge
// feathering; the zero EdgeOpacity makes every edge fully transparent.
func NewFullSubpixel(pixelIn PixelType, widthIn, heightIn, rowstrideIn int,
	srcXSpx, srcYSpx, srcWidthSpx, srcHeightSpx int,
	pixelOut PixelType, widthOut, heightOut, rowstrideOut int, flags Flags, opacity EdgeOpacity) (*Context, error) {
	if srcWidthSpx <= 0 || srcHeightSpx <= 0 {
		return nil, fmt.Errorf("smolscale: new context: %w", ErrInvalidDimensions)
	}

	// A subpixel source rectangle is realized as a context scaling the
	// effective (fractional) source size, with the fractional origin
	// folded into the bilinear/box precalculation's initial sample
	// position (see dsp.PrecalcBilinearOrigin/PrecalcBoxesOrigin) rather
	// than the dimension itself, so filtering samples the requested
	// sub-pixel window instead of always starting flush with pixel 0.
	effWidthIn := FromSpx(srcWidthSpx)
	effHeightIn := FromSpx(srcHeightSpx)

	// The whole-pixel part of the origin advances where unpacking starts
	// in the raw buffer; only the fractional remainder (0-255) needs to
	// bias the filter precalc tables below, since those already operate
	// over the cropped effWidthIn/effHeightIn window.
	originXPx := srcXSpx / subpixelMul
	originYPx := srcYSpx / subpixelMul
	fracXSpx := int64(srcXSpx % subpixelMul)
	fracYSpx := int64(srcYSpx % subpixelMul)

	if originXPx < 0 || originYPx < 0 || originXPx+effWidthIn > widthIn || originYPx+effHeightIn > heightIn {
		return nil, fmt.Errorf("smolscale: new context: source rectangle exceeds backing buffer: %w", ErrInvalidDimensions)
	}

	return newContext(pixelIn, effWidthIn, effHeightIn, rowstrideIn, originXPx, originYPx, fracXSpx, fracYSpx,
		pixelOut, widthOut, heightOut, rowstrideOut, flags, opacity)
}

func newContext(pixelIn PixelType, widthIn, heightIn, rowstrideIn int, originXPx, originYPx int, fracXSpx, fracYSpx int64,
	pixelOut PixelType, widthOut, heightOut, rowstrideOut int, flags Flags, opacity EdgeOpacity) (*Context, error) {
	if !pixelIn.valid() || !pixelOut.valid() {
		return nil, fmt.Errorf("smolscale: new context: %w", ErrInvalidPixelType)
	}
	if widthIn < 1 || heightIn < 1 || widthOut < 1 || heightOut < 1 {
		return nil, fmt.Errorf("smolscale: new context: %w", ErrInvalidDimensions)
	}
	if rowstrideIn < widthIn*pixelIn.BytesPerPixel() || rowstrideOut < widthOut*pixelOut.BytesPerPixel() {
		return nil, fmt.Errorf("smolscale: new context: %w", ErrRowstrideTooSmall)
	}

	withSRGB := flags.has(LinearizeSRGB)

	ctx := &Context{
		widthIn: widthIn, heightIn: heightIn, rowstrideIn: rowstrideIn, pixelIn: pixelIn,
		widthOut: widthOut, heightOut: heightOut, rowstrideOut: rowstrideOut, pixelOut: pixelOut,
		flags: flags,
		impl:  dsp.SelectImplementation(flags.has(ForceGeneric)),

		opacityFirstX: opacity.FirstX, opacityLastX: opacity.LastX,
		opacityFirstY: opacity.FirstY, opacityLastY: opacity.LastY,

		originXPx: originXPx, originYPx: originYPx,
		minRowsIn: originYPx + heightIn,
	}

	ctx.hParams = dsp.PickFilterParams(uint32(widthIn), uint32(widthOut), withSRGB)
	ctx.vParams = dsp.PickFilterParams(uint32(heightIn), uint32(heightOut), withSRGB)

	switch ctx.hParams.Filter {
	case dsp.FilterBox:
		ctx.boxX, ctx.spanMulX = dsp.PrecalcBoxesOrigin(uint32(widthIn), uint32(widthOut), false, fracXSpx)
	case dsp.FilterBilinear0H, dsp.FilterBilinear1H, dsp.FilterBilinear2H, dsp.FilterBilinear3H,
		dsp.FilterBilinear4H, dsp.FilterBilinear5H, dsp.FilterBilinear6H:
		ctx.bilinearX = dsp.PrecalcBilinearOrigin(uint32(widthIn), ctx.hParams.DimBilin, false, fracXSpx)
	}

	switch ctx.vParams.Filter {
	case dsp.FilterBox:
		// Box spans are delta-encoded (span length, not absolute start):
		// Batch reconstructs the running source-row cursor once per call
		// and then advances it row by row, since rows within one Batch
		// call are always produced in ascending order.
		ctx.boxY, ctx.spanMulY = dsp.PrecalcBoxesOrigin(uint32(heightIn), uint32(heightOut), false, fracYSpx)
	case dsp.FilterBilinear0H, dsp.FilterBilinear1H, dsp.FilterBilinear2H, dsp.FilterBilinear3H,
		dsp.FilterBilinear4H, dsp.FilterBilinear5H, dsp.FilterBilinear6H:
		ctx.bilinearY = dsp.PrecalcBilinearOrigin(uint32(heightIn), ctx.vParams.DimBilin, true, fracYSpx)
	}

	return ctx, nil
}

// WidthOut and HeightOut report the destination dimensions this Context
// was constructed for.
func (c *Context) WidthOut() int  { return c.widthOut }
func (c *Context) HeightOut() int { return c.heightOut }
