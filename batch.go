package smolscale

import (
	"fmt"
	"unsafe"

	"github.com/smolscale/smolscale/internal/dsp"
)

// PostRowFunc is called once per produced output row, after the row has
// been packed into pixelsOut. row is that row's slice of pixelsOut, so
// callers can inspect or modify it in place (e.g. to apply a final color
// transform). row has exactly
// WidthOut()*pixelOut.BytesPerPixel() bytes.
type PostRowFunc func(row []byte, width int)

// Batch scales rows [rowStart, rowEnd) of the destination image into
// pixelsOut, reading whatever source rows it needs from pixelsIn.
//
// Multiple goroutines may call Batch concurrently against the same
// Context, as long as each call targets a disjoint row range: Context
// itself is immutable after construction, and each call builds its own
// row cache and scratch buffers internally, so there is no shared mutable
// state between concurrent calls. Within one call, rows are always
// produced in ascending order.
func (c *Context) Batch(pixelsIn, pixelsOut []byte, rowStart, rowEnd int, postRow PostRowFunc) error {
	if rowStart < 0 || rowEnd > c.heightOut || rowStart > rowEnd {
		return fmt.Errorf("smolscale: batch: %w", ErrRowRangeInvalid)
	}
	if len(pixelsIn) < c.rowstrideIn*c.minRowsIn {
		return fmt.Errorf("smolscale: batch: %w", ErrBufferTooSmall)
	}
	if len(pixelsOut) < c.rowstrideOut*c.heightOut {
		return fmt.Errorf("smolscale: batch: %w", ErrBufferTooSmall)
	}
	if buffersOverlap(pixelsIn, pixelsOut) {
		return fmt.Errorf("smolscale: batch: %w", ErrBufferOverlap)
	}

	params := dsp.BatchParams{
		MetaIn:  dsp.PixelMetaTable[c.pixelIn],
		MetaOut: dsp.PixelMetaTable[c.pixelOut],

		PixelIn:  int(c.pixelIn),
		PixelOut: int(c.pixelOut),

		WidthIn: c.widthIn, HeightIn: c.heightIn, RowstrideIn: c.rowstrideIn,
		WidthOut: c.widthOut, HeightOut: c.heightOut, RowstrideOut: c.rowstrideOut,

		Linearize: c.flags.has(LinearizeSRGB),

		HParams: c.hParams,
		VParams: c.vParams,

		BilinearX: c.bilinearX,
		BilinearY: c.bilinearY,
		BoxX:      c.boxX,
		BoxY:      c.boxY,
		SpanMulX:  c.spanMulX,
		SpanMulY:  c.spanMulY,

		OpacityFirstX: c.opacityFirstX, OpacityLastX: c.opacityLastX,
		OpacityFirstY: c.opacityFirstY, OpacityLastY: c.opacityLastY,

		OriginXPx: c.originXPx, OriginYPx: c.originYPx,
	}

	var dspPostRow dsp.PostRowFunc
	if postRow != nil {
		dspPostRow = dsp.PostRowFunc(postRow)
	}

	if params.Linearize || c.hParams.Storage == dsp.Storage128 || c.vParams.Storage == dsp.Storage128 {
		dsp.RunBatch128(params, pixelsIn, pixelsOut, rowStart, rowEnd, dspPostRow)
	} else {
		dsp.RunBatch64(params, pixelsIn, pixelsOut, rowStart, rowEnd, dspPostRow)
	}

	return nil
}

// buffersOverlap reports whether a and b occupy any of the same memory, per
// spec.md §6's "buffers must not overlap" contract: unlike the filter math,
// this is cheap to check outright rather than trust the caller on, since an
// overlapping write/read would otherwise corrupt output silently instead of
// failing loudly.
func buffersOverlap(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	aEnd := aStart + uintptr(len(a))
	bEnd := bStart + uintptr(len(b))
	return aStart < bEnd && bStart < aEnd
}
