package dsp

import "testing"

// TestHorizontalBox64WeighsBoundaryPixelsCorrectly resamples a 17-pixel
// gradient row down to 2 pixels (8.5:1, well past the 8:1 threshold where
// PickFilterParams switches to box filtering) and checks both outputs
// against hand-computed expected values.
//
// A uniform-fill row can't catch a weight-direction bug: any weighted mix
// of identical values still equals that value. This uses a gradient
// (v[i] = 10*i) specifically so a misplaced weight changes the result.
//
// PrecalcBoxes(17, 2, false) produces spans {Stride:7, Frac:128} and
// {Stride:8, Frac:0}: span 0 covers source pixels 0-8, with pixel 0 at full
// weight (it's the row's leading edge), pixels 1-7 at full weight, and
// pixel 8 at half weight (Frac=128 means the boundary pixel of span 0 is
// the leading pixel of span 1, each getting half). Span 1 covers pixels
// 8-16 the same way, pixel 8 contributing its other half and pixel 16
// landing exactly on the row's last pixel (Frac=0, the trailing read is
// the clamped edge case).
//
//	span 0 weighted sum: 0 + (10+20+30+40+50+60+70) + 80*0.5 = 320
//	span 0 covered width: 1 + 7 + 0.5 = 8.5 -> 320/8.5 = 37 (floor)
//	span 1 weighted sum: 80*0.5 + (90+...+160) + 0 = 1040
//	span 1 covered width: 0.5 + 8 + 0 = 8.5 -> 1040/8.5 = 122 (floor)
func TestHorizontalBox64WeighsBoundaryPixelsCorrectly(t *testing.T) {
	const dimIn, dimOut = 17, 2

	rowIn := make([]wide64, dimIn)
	for i := range rowIn {
		v := uint8(10 * i)
		rowIn[i] = packWide64(v, v, v, v)
	}

	spans, spanMul := PrecalcBoxes(dimIn, dimOut, false)
	if len(spans) != dimOut {
		t.Fatalf("got %d spans, want %d", len(spans), dimOut)
	}
	wantSpans := []BoxSpan{{Stride: 7, Frac: 128}, {Stride: 8, Frac: 0}}
	for i, s := range spans {
		if s != wantSpans[i] {
			t.Fatalf("span %d = %+v, want %+v", i, s, wantSpans[i])
		}
	}

	rowOut := make([]wide64, dimOut)
	HorizontalBox64(spans, spanMul, rowIn, rowOut)

	want := [dimOut]uint16{37, 122}
	for i, w := range rowOut {
		c0, c1, c2, c3 := lanes64(w)
		if c0 != want[i] || c1 != want[i] || c2 != want[i] || c3 != want[i] {
			t.Errorf("rowOut[%d] = (%d,%d,%d,%d), want all %d", i, c0, c1, c2, c3, want[i])
		}
	}
}

// TestHorizontalBox128WeighsBoundaryPixelsCorrectly is the 64bpp test
// above, run through the 128bpp path (two 16-bit-shifted 32-bit lanes
// instead of four 8-bit lanes) to confirm the same fix applies there.
func TestHorizontalBox128WeighsBoundaryPixelsCorrectly(t *testing.T) {
	const dimIn, dimOut = 17, 2

	rowIn := make([]wide128, dimIn)
	for i := range rowIn {
		v := uint16(10 * i)
		rowIn[i] = packWide128(v, v, v, v)
	}

	spans, spanMul := PrecalcBoxes(dimIn, dimOut, false)
	rowOut := make([]wide128, dimOut)
	HorizontalBox128(spans, spanMul, rowIn, rowOut)

	want := [dimOut]uint32{37, 122}
	for i, w := range rowOut {
		c0, c1, c2, c3 := lanes128(w)
		if c0 != want[i] || c1 != want[i] || c2 != want[i] || c3 != want[i] {
			t.Errorf("rowOut[%d] = (%d,%d,%d,%d), want all %d", i, c0, c1, c2, c3, want[i])
		}
	}
}
