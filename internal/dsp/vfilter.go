package dsp

// RowCache64 holds horizontally-prefiltered source rows for the vertical
// filter pass, keyed by source row index. Vertical bilinear only ever
// looks at two adjacent source rows at a time (or the same row twice, for
// magnification), and vertical box looks at a contiguous span; in both
// cases consecutive output rows usually share most of their source rows
// with the previous call, so re-running the horizontal pass on a row
// already seen is wasted work. The cache remembers the two (or N, for
// box) most recently produced rows and their source indices.
type RowCache64 struct {
	width int
	rows  map[uint32][]wide64
	order []uint32 // eviction order, oldest first
	cap   int
}

// NewRowCache64 creates a cache that keeps at most cap horizontally
// scaled rows of width pixels.
func NewRowCache64(width, cap int) *RowCache64 {
	if cap < 2 {
		cap = 2
	}
	return &RowCache64{width: width, rows: make(map[uint32][]wide64, cap), cap: cap}
}

// Get returns the cached row for source index i, or nil if not cached.
func (c *RowCache64) Get(i uint32) []wide64 {
	return c.rows[i]
}

// Put stores row under source index i, evicting the oldest entry if the
// cache is full.
func (c *RowCache64) Put(i uint32, row []wide64) {
	if _, ok := c.rows[i]; ok {
		return
	}
	if len(c.order) >= c.cap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.rows, oldest)
	}
	c.rows[i] = row
	c.order = append(c.order, i)
}

// RowCache128 is RowCache64's 128bpp counterpart.
type RowCache128 struct {
	width int
	rows  map[uint32][]wide128
	order []uint32
	cap   int
}

func NewRowCache128(width, cap int) *RowCache128 {
	if cap < 2 {
		cap = 2
	}
	return &RowCache128{width: width, rows: make(map[uint32][]wide128, cap), cap: cap}
}

func (c *RowCache128) Get(i uint32) []wide128 {
	return c.rows[i]
}

func (c *RowCache128) Put(i uint32, row []wide128) {
	if _, ok := c.rows[i]; ok {
		return
	}
	if len(c.order) >= c.cap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.rows, oldest)
	}
	c.rows[i] = row
	c.order = append(c.order, i)
}

// VerticalBilinear64 produces one output row by blending, for each of
// 2^halvings absolute-offset/fraction pairs starting at
// samples[outrow<<halvings], the source row at that offset with its
// neighbor, then averaging the 2^halvings blends down to one row. samples
// must have been precalculated with absolute offsets (see PrecalcBilinear's
// absolute parameter): unlike the horizontal pass, which walks forward
// through one row at a time and benefits from delta-encoded offsets, the
// vertical pass is driven by row index and needs random access.
func VerticalBilinear64(samples []BilinearSample, halvings int, outrow uint32, fetch func(uint32) []wide64, out []wide64, scratch []wide64) {
	group := 1 << uint(halvings)
	base := int(outrow) << uint(halvings)

	for x := range scratch {
		scratch[x] = 0
	}

	for i := 0; i < group; i++ {
		s := samples[base+i]
		top := fetch(uint32(s.Offset))
		bottom := fetch(uint32(s.Offset) + 1)
		frac := uint32(s.Frac) << 8

		for x := range out {
			blended := lerp64(bottom[x], top[x], frac)
			scratch[x] += wide64(uint64(blended) & lane64Mask)
		}
	}

	for x := range out {
		out[x] = wide64((uint64(scratch[x]) >> uint(halvings)) & lane64Mask)
	}
}

// VerticalBilinear128 is VerticalBilinear64's 128bpp counterpart.
func VerticalBilinear128(samples []BilinearSample, halvings int, outrow uint32, fetch func(uint32) []wide128, out []wide128, scratch []wide128) {
	group := 1 << uint(halvings)
	base := int(outrow) << uint(halvings)

	for x := range scratch {
		scratch[x] = wide128{}
	}

	for i := 0; i < group; i++ {
		s := samples[base+i]
		top := fetch(uint32(s.Offset))
		bottom := fetch(uint32(s.Offset) + 1)
		frac := uint64(s.Frac) << 24

		for x := range out {
			blended := lerp128(bottom[x], top[x], frac)
			scratch[x][0] = (scratch[x][0]&lane128Mask + blended[0]&lane128Mask) & lane128Mask
			scratch[x][1] = (scratch[x][1]&lane128Mask + blended[1]&lane128Mask) & lane128Mask
		}
	}

	for x := range out {
		out[x] = wide128{
			(scratch[x][0] & lane128Mask) >> uint(halvings),
			(scratch[x][1] & lane128Mask) >> uint(halvings),
		}
	}
}

// VerticalOne64 copies the single source row straight through.
func VerticalOne64(fetch func(uint32) []wide64, out []wide64) {
	copy(out, fetch(0))
}

// VerticalOne128 is VerticalOne64's 128bpp counterpart.
func VerticalOne128(fetch func(uint32) []wide128, out []wide128) {
	copy(out, fetch(0))
}

// VerticalCopy64 copies source row index outrow straight through.
func VerticalCopy64(outrow uint32, fetch func(uint32) []wide64, out []wide64) {
	copy(out, fetch(outrow))
}

// VerticalCopy128 is VerticalCopy64's 128bpp counterpart.
func VerticalCopy128(outrow uint32, fetch func(uint32) []wide128, out []wide128) {
	copy(out, fetch(outrow))
}

// BoxCursor carries the running state box filtering needs across output
// rows within one Batch call: the absolute source row index at the current
// span's leading edge (ofs0 in the reference implementation's
// unpack_box_precalc), and that edge's weight. A span's leading weight is
// always the complement of the previous span's trailing weight, since
// spans are contiguous (span N's ofs0 equals span N-1's ofs1), so F0 is
// threaded forward from one VerticalBox64/128 call to the next instead of
// being recomputed from scratch.
type BoxCursor struct {
	Pos uint32
	F0  uint64
}

// SeekBoxCursor reconstructs the BoxCursor box filtering would have at the
// start of output row outrow, by replaying the delta-encoded span lengths
// and fractions from the beginning. Batch calls this once per call (not
// once per row) to support starting mid-image without requiring absolute
// offsets. The advance rule here must match VerticalBox64/128's own
// returned cursor exactly (Pos += Stride+1, unconditional), since that's
// the value actually threaded row-to-row by the row loop.
func SeekBoxCursor(spans []BoxSpan, outrow uint32) BoxCursor {
	c := BoxCursor{F0: 256}
	if len(spans) == 0 {
		// No box spans: the vertical filter is not box, and the cursor is unused.
		return c
	}
	for i := uint32(0); i < outrow; i++ {
		s := spans[i]
		c.Pos += uint32(s.Stride) + 1
		c.F0 = 256 - uint64(s.Frac)
	}
	return c
}

// VerticalBox64 averages a contiguous span of source rows (plus fractional
// edge rows) into one output row, mirroring HorizontalBox64 but across the
// row axis instead of the pixel axis: the leading row is weighted by
// cursor.F0 (carried from the previous span's trailing fraction), the
// interior rows are summed at full weight, and the trailing row is
// weighted by span.Frac directly -- the same f0/f1 split the reference
// implementation's scale_outrow_box_64bpp performs per span. It returns
// the cursor the next call (for outrow+1) should start from; the trailing
// row is deliberately left unconsumed (the next span reads it again as its
// own leading row) rather than advanced past.
func VerticalBox64(span BoxSpan, cursor BoxCursor, spanMul uint32, fetch func(uint32) []wide64, out []wide64, scratch []uint64) BoxCursor {
	for x := range scratch {
		scratch[x] = 0
	}

	row := fetch(cursor.Pos)
	for x, px := range row {
		scratch[x] += weightLane64(px, cursor.F0)
	}
	pos := cursor.Pos + 1

	end := pos + uint32(span.Stride)
	for pos < end {
		row := fetch(pos)
		for x, px := range row {
			scratch[x] += uint64(px) & lane64Mask
		}
		pos++
	}

	frac := uint64(span.Frac)
	if frac != 0 {
		edge := fetch(pos)
		for x, px := range edge {
			scratch[x] += weightLane64(px, frac)
		}
	}

	for x, accum := range scratch {
		out[x] = scale64(accum, spanMul)
	}

	return BoxCursor{Pos: pos, F0: 256 - frac}
}

// VerticalBox128 is VerticalBox64's 128bpp counterpart. scratch holds two
// uint64 lanes per pixel (scratch[2x], scratch[2x+1]), so callers can source
// it from the same pooled []uint64 buffer the 64bpp path uses, just sized
// for twice as many lanes.
func VerticalBox128(span BoxSpan, cursor BoxCursor, spanMul uint32, fetch func(uint32) []wide128, out []wide128, scratch []uint64) BoxCursor {
	for x := range scratch {
		scratch[x] = 0
	}

	row := fetch(cursor.Pos)
	for x, px := range row {
		scratch[2*x] += weightLane32(px[0], cursor.F0)
		scratch[2*x+1] += weightLane32(px[1], cursor.F0)
	}
	pos := cursor.Pos + 1

	end := pos + uint32(span.Stride)
	for pos < end {
		row := fetch(pos)
		for x, px := range row {
			scratch[2*x] += px[0] & lane128Mask
			scratch[2*x+1] += px[1] & lane128Mask
		}
		pos++
	}

	frac := uint64(span.Frac)
	if frac != 0 {
		edge := fetch(pos)
		for x, px := range edge {
			scratch[2*x] += weightLane32(px[0], frac)
			scratch[2*x+1] += weightLane32(px[1], frac)
		}
	}

	for x := range out {
		out[x] = wide128{scaleLane32(scratch[2*x], spanMul), scaleLane32(scratch[2*x+1], spanMul)}
	}

	return BoxCursor{Pos: pos, F0: 256 - frac}
}
