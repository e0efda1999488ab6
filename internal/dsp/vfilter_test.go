package dsp

import "testing"

// TestVerticalBox64WeighsBoundaryRowsCorrectly is VerticalBox64's version
// of TestHorizontalBox64WeighsBoundaryPixelsCorrectly: a 17-row, 1-column
// gradient image scaled down to 2 rows at 8.5:1, checked against the same
// hand-computed expected values (see that test's comment for the
// arithmetic -- rows stand in for columns here).
//
// This also exercises BoxCursor/SeekBoxCursor together: the second call
// seeds its cursor from the first call's return value, and a separate
// SeekBoxCursor(spans, 1) replay must agree with it exactly, since Batch
// uses SeekBoxCursor to resume a row range that doesn't start at 0.
func TestVerticalBox64WeighsBoundaryRowsCorrectly(t *testing.T) {
	const dimIn, dimOut = 17, 2

	rows := make([][]wide64, dimIn)
	for i := range rows {
		v := uint8(10 * i)
		rows[i] = []wide64{packWide64(v, v, v, v)}
	}
	fetch := func(i uint32) []wide64 { return rows[i] }

	spans, spanMul := PrecalcBoxes(dimIn, dimOut, false)
	out := make([]wide64, 1)
	scratch := make([]uint64, 1)

	cursor0 := SeekBoxCursor(spans, 0)
	if cursor0 != (BoxCursor{Pos: 0, F0: 256}) {
		t.Fatalf("SeekBoxCursor(spans, 0) = %+v, want {0 256}", cursor0)
	}

	cursor1 := VerticalBox64(spans[0], cursor0, spanMul, fetch, out, scratch)
	if c0, _, _, _ := lanes64(out[0]); c0 != 37 {
		t.Errorf("row 0 = %d, want 37", c0)
	}

	if seeked := SeekBoxCursor(spans, 1); seeked != cursor1 {
		t.Fatalf("SeekBoxCursor(spans, 1) = %+v, want %+v (VerticalBox64's own returned cursor)", seeked, cursor1)
	}

	VerticalBox64(spans[1], cursor1, spanMul, fetch, out, scratch)
	if c0, _, _, _ := lanes64(out[0]); c0 != 122 {
		t.Errorf("row 1 = %d, want 122", c0)
	}
}

// TestVerticalBox64ResumesMidImage checks that starting a run from
// SeekBoxCursor(spans, 1) directly (as Batch does for a row range that
// doesn't start at row 0) produces the same output as running from row 0
// and discarding the first row.
func TestVerticalBox64ResumesMidImage(t *testing.T) {
	const dimIn, dimOut = 17, 2

	rows := make([][]wide64, dimIn)
	for i := range rows {
		v := uint8(10 * i)
		rows[i] = []wide64{packWide64(v, v, v, v)}
	}
	fetch := func(i uint32) []wide64 { return rows[i] }

	spans, spanMul := PrecalcBoxes(dimIn, dimOut, false)
	out := make([]wide64, 1)
	scratch := make([]uint64, 1)

	resumed := SeekBoxCursor(spans, 1)
	VerticalBox64(spans[1], resumed, spanMul, fetch, out, scratch)

	if c0, _, _, _ := lanes64(out[0]); c0 != 122 {
		t.Errorf("resumed row 1 = %d, want 122", c0)
	}
}

// TestVerticalBox128WeighsBoundaryRowsCorrectly mirrors the 64bpp test
// through the 128bpp path.
func TestVerticalBox128WeighsBoundaryRowsCorrectly(t *testing.T) {
	const dimIn, dimOut = 17, 2

	rows := make([][]wide128, dimIn)
	for i := range rows {
		v := uint16(10 * i)
		rows[i] = []wide128{packWide128(v, v, v, v)}
	}
	fetch := func(i uint32) []wide128 { return rows[i] }

	spans, spanMul := PrecalcBoxes(dimIn, dimOut, false)
	out := make([]wide128, 1)
	scratch := make([]uint64, 2)

	cursor := SeekBoxCursor(spans, 0)
	cursor = VerticalBox128(spans[0], cursor, spanMul, fetch, out, scratch)
	if c0, _, _, _ := lanes128(out[0]); c0 != 37 {
		t.Errorf("row 0 = %d, want 37", c0)
	}

	VerticalBox128(spans[1], cursor, spanMul, fetch, out, scratch)
	if c0, _, _, _ := lanes128(out[0]); c0 != 122 {
		t.Errorf("row 1 = %d, want 122", c0)
	}
}
