package dsp

import "github.com/smolscale/smolscale/internal/pool"

// BatchParams bundles everything an engine run needs to know about one
// scaling operation's shape and precalculated tables. Context.Batch in the
// parent package assembles one of these from the Context's precalculated
// fields on every call; nothing in here is mutated at run time.
type BatchParams struct {
	MetaIn, MetaOut PixelMeta

	// PixelIn/PixelOut are the pixel type ordinals MetaIn/MetaOut were
	// looked up from, kept alongside for the direct-repack fast path
	// (RepackDirect indexes PixelMetaTable itself rather than taking a
	// PixelMeta, mirroring the reference implementation's repack_row_*
	// functions, which dispatch on the SmolPixelType pair directly).
	PixelIn, PixelOut int

	WidthIn, HeightIn, RowstrideIn    int
	WidthOut, HeightOut, RowstrideOut int

	Linearize bool

	HParams FilterParams
	VParams FilterParams

	BilinearX []BilinearSample
	BilinearY []BilinearSample
	BoxX      []BoxSpan
	BoxY      []BoxSpan
	SpanMulX  uint32
	SpanMulY  uint32

	// OpacityFirstX/OpacityLastX/OpacityFirstY/OpacityLastY are 0-256
	// multipliers (256 = fully opaque; the Context constructors always
	// populate these, defaulting to 256 unless NewFullSubpixel's caller
	// asks for feathering) applied to the first/last output column and
	// first/last output row after filtering.
	OpacityFirstX, OpacityLastX uint16
	OpacityFirstY, OpacityLastY uint16

	// OriginXPx/OriginYPx are the whole-pixel part of a subpixel source
	// rectangle's origin (see the parent package's NewFullSubpixel):
	// WidthIn/HeightIn/the bilinear and box tables above describe the
	// sub-rectangle itself, but the raw pixelsIn buffer is the full,
	// uncropped image, so every row/column read against it needs this
	// offset added first. Zero for a plain (non-subpixel) Context.
	OriginXPx, OriginYPx int
}

// PostRowFunc mirrors the parent package's PostRowFunc to avoid an import
// cycle; the parent's exported type is defined in terms of this one.
type PostRowFunc func(row []byte, width int)

// RunBatch64 produces destination rows [rowStart, rowEnd) into pixelsOut
// at 64bpp precision (no gamma linearization), reading whatever source
// rows it needs from pixelsIn. See the parent package's Context.Batch for
// the concurrency contract this relies on (ascending row order within one
// call, disjoint ranges across concurrent calls).
func RunBatch64(p BatchParams, pixelsIn, pixelsOut []byte, rowStart, rowEnd int, postRow PostRowFunc) {
	if isDirectRepack(p) {
		runRepackDirect(p, pixelsIn, pixelsOut, rowStart, rowEnd, postRow)
		return
	}

	cache := NewRowCache64(p.WidthOut, 4)

	fetchFiltered := func(srcRow uint32) []wide64 {
		if row := cache.Get(srcRow); row != nil {
			return row
		}
		if int(srcRow) >= p.HeightIn {
			srcRow = uint32(p.HeightIn - 1)
		}
		unpacked := make([]wide64, p.WidthIn)
		actualRow := int(srcRow) + p.OriginYPx
		rowBytes := pixelsIn[actualRow*p.RowstrideIn+p.OriginXPx*p.MetaIn.BytesPerPixel():]
		UnpackRow64(p.MetaIn, rowBytes, unpacked)

		filtered := make([]wide64, p.WidthOut)
		runHorizontal64(p, unpacked, filtered)
		applyEdgeOpacity64(p, filtered)
		cache.Put(srcRow, filtered)
		return filtered
	}

	boxCursor := SeekBoxCursor(p.BoxY, uint32(rowStart))
	scratch := make([]wide64, p.WidthOut)
	outRow := make([]wide64, p.WidthOut)

	boxScratch := pool.GetWideRow(p.WidthOut)
	defer pool.PutWideRow(boxScratch)

	for row := rowStart; row < rowEnd; row++ {
		boxCursor = runVertical64(p, uint32(row), fetchFiltered, outRow, scratch, boxScratch, boxCursor)
		if row == 0 {
			weightEntireRow64(outRow, uint64(p.OpacityFirstY))
		}
		if row == p.HeightOut-1 {
			weightEntireRow64(outRow, uint64(p.OpacityLastY))
		}

		packed := pixelsOut[row*p.RowstrideOut : row*p.RowstrideOut+p.WidthOut*p.MetaOut.BytesPerPixel()]
		PackRow64(p.MetaOut, outRow, packed)

		if postRow != nil {
			postRow(packed, p.WidthOut)
		}
	}
}

// RunBatch128 is RunBatch64's 128bpp counterpart, used whenever gamma
// linearization is requested or either axis's filter selection asks for
// Storage128: channels are widened to 16 bits so premultiply and
// interpolation don't lose precision on a linearized signal the way 8-bit
// math would, and box sums over more than 255 samples fit in a lane.
func RunBatch128(p BatchParams, pixelsIn, pixelsOut []byte, rowStart, rowEnd int, postRow PostRowFunc) {
	if isDirectRepack(p) {
		runRepackDirect(p, pixelsIn, pixelsOut, rowStart, rowEnd, postRow)
		return
	}

	cache := NewRowCache128(p.WidthOut, 4)

	fetchFiltered := func(srcRow uint32) []wide128 {
		if row := cache.Get(srcRow); row != nil {
			return row
		}
		if int(srcRow) >= p.HeightIn {
			srcRow = uint32(p.HeightIn - 1)
		}
		unpacked := make([]wide128, p.WidthIn)
		actualRow := int(srcRow) + p.OriginYPx
		rowBytes := pixelsIn[actualRow*p.RowstrideIn+p.OriginXPx*p.MetaIn.BytesPerPixel():]
		UnpackRow128(p.MetaIn, rowBytes, unpacked, p.Linearize)

		filtered := make([]wide128, p.WidthOut)
		runHorizontal128(p, unpacked, filtered)
		applyEdgeOpacity128(p, filtered)
		cache.Put(srcRow, filtered)
		return filtered
	}

	boxCursor := SeekBoxCursor(p.BoxY, uint32(rowStart))
	scratch := make([]wide128, p.WidthOut)
	outRow := make([]wide128, p.WidthOut)

	boxScratch := pool.GetWideRow(2 * p.WidthOut)
	defer pool.PutWideRow(boxScratch)

	for row := rowStart; row < rowEnd; row++ {
		boxCursor = runVertical128(p, uint32(row), fetchFiltered, outRow, scratch, boxScratch, boxCursor)
		if row == 0 {
			weightEntireRow128(outRow, uint64(p.OpacityFirstY))
		}
		if row == p.HeightOut-1 {
			weightEntireRow128(outRow, uint64(p.OpacityLastY))
		}

		packed := pixelsOut[row*p.RowstrideOut : row*p.RowstrideOut+p.WidthOut*p.MetaOut.BytesPerPixel()]
		PackRow128(p.MetaOut, outRow, packed, p.Linearize)

		if postRow != nil {
			postRow(packed, p.WidthOut)
		}
	}
}

// applyEdgeOpacity64/128 feather the first/last column of a horizontally
// filtered row, orthogonally to whichever filter produced it (spec's "keep
// this orthogonal to the filter kernels"): it's a post-multiply on the
// already-resampled edge pixel, not a change to the filter's sample
// weights, so it composes with copy/one/bilinear/box alike.
func applyEdgeOpacity64(p BatchParams, row []wide64) {
	weightRow64(row[:1], uint64(p.OpacityFirstX))
	weightRow64(row[len(row)-1:], uint64(p.OpacityLastX))
}

func applyEdgeOpacity128(p BatchParams, row []wide128) {
	weightRow128(row[:1], uint64(p.OpacityFirstX))
	weightRow128(row[len(row)-1:], uint64(p.OpacityLastX))
}

func weightRow64(row []wide64, weight uint64) {
	if weight == 256 {
		return
	}
	row[0] = wide64(weightLane64(row[0], weight))
}

func weightRow128(row []wide128, weight uint64) {
	if weight == 256 {
		return
	}
	row[0] = wide128{weightLane32(row[0][0], weight), weightLane32(row[0][1], weight)}
}

// weightEntireRow64/128 apply a top/bottom edge opacity multiplier across an
// entire output row (every column), unlike weightRow64/128 above which only
// ever touch a single edge pixel -- the X and Y edges feather different
// extents: a column's edge is one pixel tall, but a row's edge spans the
// row's full width.
func weightEntireRow64(row []wide64, weight uint64) {
	if weight == 256 {
		return
	}
	for i := range row {
		row[i] = wide64(weightLane64(row[i], weight))
	}
}

func weightEntireRow128(row []wide128, weight uint64) {
	if weight == 256 {
		return
	}
	for i := range row {
		row[i] = wide128{weightLane32(row[i][0], weight), weightLane32(row[i][1], weight)}
	}
}

// isDirectRepack reports whether this batch is a same-dimension format
// conversion with no filtering or edge feathering to apply, the case the
// reference implementation shortcuts straight to repack_row_* instead of
// running the general resample engine.
func isDirectRepack(p BatchParams) bool {
	return p.WidthIn == p.WidthOut && p.HeightIn == p.HeightOut &&
		p.OpacityFirstX == 256 && p.OpacityLastX == 256 &&
		p.OpacityFirstY == 256 && p.OpacityLastY == 256
}

// runRepackDirect converts rows [rowStart, rowEnd) straight from pixelIn's
// packed format to pixelOut's via RepackDirect, bypassing unpack/filter/pack
// entirely since both dimensions are unchanged.
func runRepackDirect(p BatchParams, pixelsIn, pixelsOut []byte, rowStart, rowEnd int, postRow PostRowFunc) {
	inBpp := p.MetaIn.BytesPerPixel()
	outBpp := p.MetaOut.BytesPerPixel()

	for row := rowStart; row < rowEnd; row++ {
		actualRow := row + p.OriginYPx
		inStart := actualRow*p.RowstrideIn + p.OriginXPx*inBpp
		rowIn := pixelsIn[inStart : inStart+p.WidthIn*inBpp]
		rowOut := pixelsOut[row*p.RowstrideOut : row*p.RowstrideOut+p.WidthOut*outBpp]

		RepackDirect(p.PixelIn, p.PixelOut, p.Linearize, rowIn, rowOut, p.WidthOut)

		if postRow != nil {
			postRow(rowOut, p.WidthOut)
		}
	}
}

func runHorizontal64(p BatchParams, rowIn, rowOut []wide64) {
	switch {
	case p.HParams.Filter == FilterCopy:
		HorizontalCopy64(rowIn, rowOut)
	case p.HParams.Filter == FilterOne:
		HorizontalOne64(rowIn, rowOut)
	case p.HParams.Filter == FilterBox:
		HorizontalBox64(p.BoxX, p.SpanMulX, rowIn, rowOut)
	default:
		HorizontalBilinear64(p.BilinearX, p.HParams.Halvings, rowIn, rowOut)
	}
}

func runHorizontal128(p BatchParams, rowIn, rowOut []wide128) {
	switch {
	case p.HParams.Filter == FilterCopy:
		HorizontalCopy128(rowIn, rowOut)
	case p.HParams.Filter == FilterOne:
		HorizontalOne128(rowIn, rowOut)
	case p.HParams.Filter == FilterBox:
		HorizontalBox128(p.BoxX, p.SpanMulX, rowIn, rowOut)
	default:
		HorizontalBilinear128(p.BilinearX, p.HParams.Halvings, rowIn, rowOut)
	}
}

func runVertical64(p BatchParams, outrow uint32, fetch func(uint32) []wide64, out, scratch []wide64, boxScratch []uint64, boxCursor BoxCursor) BoxCursor {
	switch {
	case p.VParams.Filter == FilterCopy:
		VerticalCopy64(outrow, fetch, out)
		return boxCursor
	case p.VParams.Filter == FilterOne:
		VerticalOne64(fetch, out)
		return boxCursor
	case p.VParams.Filter == FilterBox:
		return VerticalBox64(p.BoxY[outrow], boxCursor, p.SpanMulY, fetch, out, boxScratch)
	default:
		VerticalBilinear64(p.BilinearY, p.VParams.Halvings, outrow, fetch, out, scratch)
		return boxCursor
	}
}

func runVertical128(p BatchParams, outrow uint32, fetch func(uint32) []wide128, out, scratch []wide128, boxScratch []uint64, boxCursor BoxCursor) BoxCursor {
	switch {
	case p.VParams.Filter == FilterCopy:
		VerticalCopy128(outrow, fetch, out)
		return boxCursor
	case p.VParams.Filter == FilterOne:
		VerticalOne128(fetch, out)
		return boxCursor
	case p.VParams.Filter == FilterBox:
		return VerticalBox128(p.BoxY[outrow], boxCursor, p.SpanMulY, fetch, out, boxScratch)
	default:
		VerticalBilinear128(p.BilinearY, p.VParams.Halvings, outrow, fetch, out, scratch)
		return boxCursor
	}
}
