package dsp

import "testing"

func TestPickFilterParamsThresholds(t *testing.T) {
	isBilinear := func(f Filter) bool { return f >= FilterBilinear0H && f <= FilterBilinear6H }

	cases := []struct {
		name          string
		dimIn, dimOut uint32
		withSRGB      bool
		want          func(Filter) bool
		wantStorage   Storage
	}{
		{"identity", 100, 100, false, func(f Filter) bool { return f == FilterCopy }, Storage64},
		{"single-source-pixel", 1, 50, false, func(f Filter) bool { return f == FilterOne }, Storage64},
		{"mild-shrink-bilinear", 100, 60, false, isBilinear, Storage64},
		{"box-threshold-just-under", 100, 13, false, isBilinear, Storage64}, // 100 <= 13*8=104
		{"box-threshold-just-over", 801, 100, false, func(f Filter) bool { return f == FilterBox }, Storage64}, // 801 > 100*8=800
		{"extreme-shrink-128bpp-box", 256*255 + 1, 256, false, func(f Filter) bool { return f == FilterBox }, Storage128},
		{"srgb-forces-128bpp-on-identity", 100, 100, true, func(f Filter) bool { return f == FilterCopy }, Storage128},
		{"srgb-forces-128bpp-on-bilinear", 100, 60, true, isBilinear, Storage128},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := PickFilterParams(c.dimIn, c.dimOut, c.withSRGB)
			if !c.want(p.Filter) {
				t.Errorf("Filter = %v, unexpected", p.Filter)
			}
			if p.Storage != c.wantStorage {
				t.Errorf("Storage = %v, want %v", p.Storage, c.wantStorage)
			}
		})
	}
}

func TestPickFilterParamsHalvingsConverge(t *testing.T) {
	p := PickFilterParams(50, 7, false) // 50 <= 7*8, so bilinear with 2 halvings
	if p.Filter < FilterBilinear0H || p.Filter > FilterBilinear6H {
		t.Fatalf("expected a bilinear filter, got %v", p.Filter)
	}
	// DimBilin, halved p.Halvings times, must land exactly on dimOut.
	d := p.DimBilin
	for i := 0; i < p.Halvings; i++ {
		d /= 2
	}
	if d != 7 {
		t.Fatalf("DimBilin %d does not halve down to dimOut 7 after %d halvings (got %d)", p.DimBilin, p.Halvings, d)
	}
}
