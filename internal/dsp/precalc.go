package dsp

const (
	// subpixelMul mirrors the parent package's subpixel unit (1/256th of a
	// pixel): precalc's origin-bias parameters arrive in that unit.
	subpixelMul = 256

	smolSmallMul = 256
	smolBigMul   = 65536
	smolBoxesMul = uint64(smolBigMul) * smolSmallMul
	smolBilinMul = uint64(smolBigMul) * smolBigMul

	// smolBoxesShift is log2(smolBoxesMul); box accumulators are
	// renormalized by multiplying by spanMul (computed against
	// smolBoxesMul in PrecalcBoxes) and shifting back down by this much,
	// mirroring scale_64bpp/scale_128bpp_half's division by
	// SMOL_BOXES_MULTIPLIER in the original source.
	smolBoxesShift = 24
)

// BilinearSample is one (offset, fraction) pair consumed by a horizontal or
// vertical bilinear filter: it samples source pixel Offset and its
// neighbor Offset+1, weighting Offset by Frac/256 and the neighbor by
// (256-Frac)/256.
type BilinearSample struct {
	Offset uint16
	Frac   uint16
}

// PrecalcBilinear computes the per-output-sample offset/fraction table for
// bilinear resampling from dimIn source samples to dimOut destination
// samples. When absolute is false, Offset is delta-encoded against the
// previous sample's offset (monotonically non-decreasing, usually 0 or 1)
// instead of holding the absolute source index -- the row filters walk the
// source forward and only need the stride.
func PrecalcBilinear(dimIn, dimOut uint32, absolute bool) []BilinearSample {
	return PrecalcBilinearOrigin(dimIn, dimOut, absolute, 0)
}

// PrecalcBilinearOrigin is PrecalcBilinear with an additional subpixel
// origin bias, in 1/256th-pixel units (see ToSpx/FromSpx): it shifts the
// initial sample-center position the same way the reference
// implementation's smol_scale_new_full_subpixel biases first_sample_ofs[1]
// before the main precalculation loop, so a source sub-rectangle that
// doesn't start on a whole-pixel boundary still samples the right place.
func PrecalcBilinearOrigin(dimIn, dimOut uint32, absolute bool, originSpx int64) []BilinearSample {
	out := make([]BilinearSample, 0, dimOut)

	var fracF, fracStepF uint64
	if dimIn > dimOut {
		fracStepF = (uint64(dimIn) * smolBilinMul) / uint64(dimOut)
		fracF = (fracStepF - smolBilinMul) / 2
	} else {
		denom := dimOut - 1
		if dimOut <= 1 {
			denom = 1
		}
		fracStepF = (uint64(dimIn-1) * smolBilinMul) / uint64(denom)
		fracF = 0
	}

	if originSpx != 0 {
		bias := originSpx * int64(smolBilinMul) / subpixelMul
		signed := int64(fracF) + bias
		if signed < 0 {
			signed = 0
		}
		fracF = uint64(signed)
	}

	var lastOfs uint16
	remaining := dimOut

	for remaining > 0 {
		ofs := uint16(fracF / smolBilinMul)
		if uint32(ofs) >= dimIn-1 {
			break
		}

		var encOfs uint16
		if absolute {
			encOfs = ofs
		} else {
			encOfs = ofs - lastOfs
		}
		frac := uint16(smolSmallMul - ((fracF/(smolBilinMul/smolSmallMul))%smolSmallMul))

		out = append(out, BilinearSample{Offset: encOfs, Frac: frac})
		fracF += fracStepF
		lastOfs = ofs
		remaining--
	}

	for remaining > 0 {
		var encOfs uint16
		if absolute {
			encOfs = uint16(dimIn - 2)
		} else {
			encOfs = uint16(dimIn-2) - lastOfs
		}
		out = append(out, BilinearSample{Offset: encOfs, Frac: 0})
		lastOfs = uint16(dimIn - 2)
		remaining--
	}

	return out
}

// BoxSpan is one output sample's source span for box filtering: it
// advances the running offset by Stride+1 source samples -- the leading
// sample (weighted by the complement of the previous span's Frac, or fully
// for the first span), then Stride whole samples -- plus a fractional
// Frac/256 contribution from the sample just past the span's end (or, when
// absolute offsets are requested, Stride holds the span's starting offset
// instead of its length).
type BoxSpan struct {
	Stride uint16
	Frac   uint16
}

// PrecalcBoxes computes the per-output-sample span table for box filtering
// from dimIn source samples to dimOut destination samples, along with the
// span_mul normalization factor: box spans have a variable number of whole
// samples plus fractional edges, so the accumulated sum needs rescaling by
// a factor approximating 1/spanWidth (in units of smolBoxesMul) to land
// back in [0,255].
func PrecalcBoxes(dimIn, dimOut uint32, absolute bool) (spans []BoxSpan, spanMul uint32) {
	return PrecalcBoxesOrigin(dimIn, dimOut, absolute, 0)
}

// PrecalcBoxesOrigin is PrecalcBoxes with an additional subpixel origin
// bias, in 1/256th-pixel units, applied the same way
// PrecalcBilinearOrigin applies one to the bilinear table: it moves the
// first span's left edge so a source sub-rectangle starting mid-pixel
// still samples from the right place.
func PrecalcBoxesOrigin(dimIn, dimOut uint32, absolute bool, originSpx int64) (spans []BoxSpan, spanMul uint32) {
	spans = make([]BoxSpan, 0, dimOut)

	fracStepF := (uint64(dimIn) * smolBigMul) / uint64(dimOut)
	var fracF uint64
	var ofs uint16

	if originSpx > 0 {
		fracF = uint64(originSpx) * smolBigMul / subpixelMul
		ofs = uint16(fracF / smolBigMul)
	}

	stride := fracStepF / smolBigMul
	f := (fracStepF / smolSmallMul) % smolSmallMul

	a := smolBoxesMul * 255
	b := (stride * 255) + ((f * 255) / 256)
	spanMul = uint32((a + b/2) / b)

	remaining := dimOut
	for remaining > 0 {
		fracF += fracStepF
		nextOfs64 := fracF / smolBigMul

		if uint32(ofs) >= dimIn-1 {
			break
		}

		nextOfs := uint16(nextOfs64)
		if uint32(nextOfs64) > dimIn {
			nextOfs = uint16(dimIn)
			if nextOfs <= ofs {
				break
			}
		}

		strideOut := nextOfs - ofs - 1
		fracOut := uint16((fracF / smolSmallMul) % smolSmallMul)

		var encOfs uint16
		if absolute {
			encOfs = ofs
		} else {
			encOfs = strideOut
		}
		spans = append(spans, BoxSpan{Stride: encOfs, Frac: fracOut})

		ofs = nextOfs
		remaining--
	}

	// Mirror PrecalcBilinear's tail fill: running out of source pixels
	// before producing dimOut spans (always possible near the edge due to
	// fixed-point rounding) is handled by repeating the last in-bounds
	// pixel at 100% weight rather than reading out of bounds.
	for remaining > 0 {
		var encOfs uint16
		if absolute {
			encOfs = ofs
			if uint32(encOfs) > dimIn-1 {
				encOfs = uint16(dimIn - 1)
			}
		}
		spans = append(spans, BoxSpan{Stride: encOfs, Frac: 0})
		remaining--
	}

	return spans, spanMul
}
