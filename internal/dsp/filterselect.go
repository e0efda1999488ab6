package dsp

// FilterParams is the outcome of selecting an algorithm and storage width
// for one axis of a scale operation.
type FilterParams struct {
	Filter    Filter
	Storage   Storage
	Halvings  int
	DimBilin  uint32 // dim_out rounded up to the halving-adjusted size bilinear interpolates to
}

// PickFilterParams chooses the filter family, accumulator width, and (for
// bilinear) halving count for resampling one axis from dimIn to dimOut
// samples. withSRGB forces 128bpp storage so gamma-correct interpolation
// has the precision it needs.
//
// Thresholds and tie-breaks are load-bearing and come straight from the
// reference implementation: box filtering is only accurate once the
// shrink ratio passes 255:1 (forced to 128bpp there, since a 64bpp 16-bit
// lane cannot hold the sum of more than 255 8-bit samples) or fast enough
// to be worth it past 8:1, a 1-pixel source axis is a pure broadcast, an
// unchanged axis is a memcpy, and everything else is bilinear at
// dimOut<<halvings samples followed by enough 2:1 halvings to come back down
// to dimOut, with the source within 2x of that bilinear size.
func PickFilterParams(dimIn, dimOut uint32, withSRGB bool) FilterParams {
	p := FilterParams{DimBilin: dimOut}
	if withSRGB {
		p.Storage = Storage128
	} else {
		p.Storage = Storage64
	}

	switch {
	case dimIn > dimOut*255:
		p.Filter = FilterBox
		p.Storage = Storage128
	case dimIn > dimOut*8:
		p.Filter = FilterBox
	case dimIn == 1:
		p.Filter = FilterOne
	case dimIn == dimOut:
		p.Filter = FilterCopy
	default:
		n := 0
		d := dimOut
		for {
			d *= 2
			if d >= dimIn {
				break
			}
			n++
		}
		p.DimBilin = dimOut << uint(n)
		p.Filter = FilterBilinear0H + Filter(n)
		p.Halvings = n
	}

	return p
}
