package dsp

import "testing"

func TestPrecalcBilinearLength(t *testing.T) {
	cases := []struct{ dimIn, dimOut uint32 }{
		{100, 40}, // minification
		{2, 16},   // magnification
		{1000, 7}, // extreme minification
		{5, 5},    // 1:1 (never selected by PickFilterParams, but precalc must not panic)
	}
	for _, c := range cases {
		out := PrecalcBilinear(c.dimIn, c.dimOut, false)
		if uint32(len(out)) != c.dimOut {
			t.Errorf("dimIn=%d dimOut=%d: len(out) = %d, want %d", c.dimIn, c.dimOut, len(out), c.dimOut)
		}
		for _, s := range out {
			if s.Frac > 256 {
				t.Errorf("dimIn=%d dimOut=%d: Frac %d exceeds 256", c.dimIn, c.dimOut, s.Frac)
			}
		}
	}
}

func TestPrecalcBilinearAbsoluteOffsetsInBounds(t *testing.T) {
	const dimIn, dimOut = 1000, 37
	out := PrecalcBilinear(dimIn, dimOut, true)
	for i, s := range out {
		if uint32(s.Offset) > dimIn-2 {
			t.Fatalf("sample %d: absolute offset %d exceeds dimIn-2 (%d)", i, s.Offset, dimIn-2)
		}
	}
}

// TestPrecalcBoxesLength locks in the edge-repeat fill: precalc_boxes_array
// in the original source pads any spans it can't produce before exhausting
// dim_out (always possible near the right/bottom edge, since the fixed-
// point step rarely divides the source dimension evenly) by repeating the
// last in-bounds pixel rather than truncating the array.
func TestPrecalcBoxesLength(t *testing.T) {
	cases := []struct{ dimIn, dimOut uint32 }{
		{1000, 7},
		{65535, 256},
		{801, 100},
		{256*255 + 1, 256},
	}
	for _, c := range cases {
		spans, spanMul := PrecalcBoxes(c.dimIn, c.dimOut, false)
		if uint32(len(spans)) != c.dimOut {
			t.Errorf("dimIn=%d dimOut=%d: len(spans) = %d, want %d", c.dimIn, c.dimOut, len(spans), c.dimOut)
		}
		if spanMul == 0 {
			t.Errorf("dimIn=%d dimOut=%d: spanMul is 0", c.dimIn, c.dimOut)
		}
	}
}

// TestPrecalcBoxesSpansCoverSource checks that walking the delta-encoded
// spans the way VerticalBox64/HorizontalBox64 actually do (Pos += Stride+1
// per span, unconditionally -- see SeekBoxCursor) advances the source
// cursor by roughly dimIn pixels total, confirming the span step wasn't
// accidentally scaled by the wrong fixed-point multiplier (SMOL_BIG_MUL vs
// SMOL_BOXES_MULTIPLIER).
func TestPrecalcBoxesSpansCoverSource(t *testing.T) {
	const dimIn, dimOut = 1000, 25
	spans, _ := PrecalcBoxes(dimIn, dimOut, false)

	pos := uint32(0)
	for _, s := range spans {
		pos += uint32(s.Stride) + 1
	}

	// Each span should advance by roughly dimIn/dimOut pixels; the total
	// walked distance should land close to dimIn, not dimIn*256 (the
	// regression this test guards against) or dimIn/256.
	want := uint32(dimIn)
	if pos > want+dimOut || pos+dimOut < want {
		t.Fatalf("spans advanced the source cursor to %d, want close to %d", pos, want)
	}
}

// TestSeekBoxCursorMatchesReplay checks SeekBoxCursor's formula agrees with
// manually replaying spans: both must land on the same absolute position
// and carried leading weight, since Batch seeds VerticalBox64/128 from
// SeekBoxCursor but the row loop itself advances the same way internally.
func TestSeekBoxCursorMatchesReplay(t *testing.T) {
	const dimIn, dimOut = 1000, 25
	spans, _ := PrecalcBoxes(dimIn, dimOut, false)

	pos := uint32(0)
	f0 := uint64(256)
	for i, s := range spans {
		got := SeekBoxCursor(spans, uint32(i))
		if got.Pos != pos || got.F0 != f0 {
			t.Fatalf("span %d: SeekBoxCursor = {%d,%d}, want {%d,%d}", i, got.Pos, got.F0, pos, f0)
		}
		pos += uint32(s.Stride) + 1
		f0 = 256 - uint64(s.Frac)
	}
}

func TestPrecalcBoxesAbsoluteOffsetsInBounds(t *testing.T) {
	const dimIn, dimOut = 2000, 11
	spans, _ := PrecalcBoxes(dimIn, dimOut, true)
	for i, s := range spans {
		if uint32(s.Stride) >= dimIn {
			t.Fatalf("span %d: absolute offset %d out of bounds for dimIn %d", i, s.Stride, dimIn)
		}
	}
}

// TestPrecalcBilinearOriginShiftsFirstOffset checks that a nonzero subpixel
// origin bias moves the first sample forward relative to an unbiased table
// over the same dimensions, instead of being silently ignored.
func TestPrecalcBilinearOriginShiftsFirstOffset(t *testing.T) {
	const dimIn, dimOut = 1000, 37
	unbiased := PrecalcBilinearOrigin(dimIn, dimOut, true, 0)
	biased := PrecalcBilinearOrigin(dimIn, dimOut, true, 128*subpixelMul)

	if len(unbiased) != len(biased) {
		t.Fatalf("origin bias changed sample count: %d vs %d", len(unbiased), len(biased))
	}
	if biased[0].Offset < unbiased[0].Offset {
		t.Fatalf("biased first offset %d should be >= unbiased first offset %d", biased[0].Offset, unbiased[0].Offset)
	}
	for i, s := range biased {
		if uint32(s.Offset) > dimIn-2 {
			t.Fatalf("sample %d: absolute offset %d exceeds dimIn-2 (%d)", i, s.Offset, dimIn-2)
		}
	}
}

// TestPrecalcBoxesOriginShiftsFirstOffset mirrors the bilinear case for box
// spans: a positive origin bias should seed the cursor past source pixel 0.
func TestPrecalcBoxesOriginShiftsFirstOffset(t *testing.T) {
	const dimIn, dimOut = 2000, 11
	unbiased, _ := PrecalcBoxesOrigin(dimIn, dimOut, true, 0)
	biased, _ := PrecalcBoxesOrigin(dimIn, dimOut, true, 200*subpixelMul)

	if len(unbiased) != len(biased) {
		t.Fatalf("origin bias changed span count: %d vs %d", len(unbiased), len(biased))
	}
	if biased[0].Stride <= unbiased[0].Stride {
		t.Fatalf("biased first span start %d should be > unbiased first span start %d", biased[0].Stride, unbiased[0].Stride)
	}
	for i, s := range biased {
		if uint32(s.Stride) >= dimIn {
			t.Fatalf("span %d: absolute offset %d out of bounds for dimIn %d", i, s.Stride, dimIn)
		}
	}
}
