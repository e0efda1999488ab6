package smolscale

import (
	"bytes"
	"testing"
)

func solidPixels(n int, b0, b1, b2, b3 byte) []byte {
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		out[i*4+0] = b0
		out[i*4+1] = b1
		out[i*4+2] = b2
		out[i*4+3] = b3
	}
	return out
}

// Scenario 1: a solid white 4x4 image downscaled to 2x2 stays solid white.
func TestScaleSolidWhiteDownscale(t *testing.T) {
	in := solidPixels(16, 0xff, 0xff, 0xff, 0xff)
	out := make([]byte, 2*2*4)

	if err := Scale(in, RGBA8Premultiplied, 4, 4, out, RGBA8Premultiplied, 2, 2); err != nil {
		t.Fatalf("Scale: %v", err)
	}

	want := solidPixels(4, 0xff, 0xff, 0xff, 0xff)
	if !bytes.Equal(out, want) {
		t.Fatalf("got %x, want %x", out, want)
	}
}

// Scenario 3: a single pixel magnified must broadcast to every output pixel,
// reordered from RGBA to BGRA.
func TestScaleSinglePixelBroadcastReorder(t *testing.T) {
	in := []byte{0x20, 0x60, 0xa0, 0xff}
	out := make([]byte, 16*16*4)

	if err := Scale(in, RGBA8Premultiplied, 1, 1, out, BGRA8Premultiplied, 16, 16); err != nil {
		t.Fatalf("Scale: %v", err)
	}

	for i := 0; i < 16*16; i++ {
		px := out[i*4 : i*4+4]
		if px[0] != 0xa0 || px[1] != 0x60 || px[2] != 0x20 || px[3] != 0xff {
			t.Fatalf("pixel %d = %x, want a0 60 20 ff", i, px)
		}
	}
}

// Scenario 4: a very wide solid row downscaled to one pixel stays solid.
func TestScaleWideRowToSinglePixel(t *testing.T) {
	const width = 65535
	in := solidPixels(width, 0xff, 0xff, 0xff, 0xff)
	out := make([]byte, 4)

	if err := Scale(in, RGBA8Premultiplied, width, 1, out, RGBA8Premultiplied, 1, 1); err != nil {
		t.Fatalf("Scale: %v", err)
	}

	want := []byte{0xff, 0xff, 0xff, 0xff}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %x, want %x", out, want)
	}
}

// Copy-path byte-exactness: same dimensions and pixel type, no flags, must
// be a byte-exact copy.
func TestScaleCopyPathByteExact(t *testing.T) {
	in := make([]byte, 37*4)
	for i := range in {
		in[i] = byte(i * 7)
	}
	out := make([]byte, len(in))

	if err := Scale(in, RGBA8Unassociated, 37, 1, out, RGBA8Unassociated, 37, 1); err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("copy path is not byte-exact")
	}
}

// Determinism: two independent runs with identical parameters must produce
// byte-identical output.
func TestScaleDeterministic(t *testing.T) {
	in := make([]byte, 23*17*4)
	for i := range in {
		in[i] = byte(i*31 + 11)
	}

	out1 := make([]byte, 9*5*4)
	out2 := make([]byte, 9*5*4)

	if err := Scale(in, RGBA8Unassociated, 23, 17, out1, RGBA8Unassociated, 9, 5); err != nil {
		t.Fatalf("Scale (1): %v", err)
	}
	if err := Scale(in, RGBA8Unassociated, 23, 17, out2, RGBA8Unassociated, 9, 5); err != nil {
		t.Fatalf("Scale (2): %v", err)
	}
	if !bytes.Equal(out1, out2) {
		t.Fatalf("two identical scale calls produced different output")
	}
}

func TestScaleInvalidDimensions(t *testing.T) {
	in := make([]byte, 4)
	out := make([]byte, 4)
	if err := Scale(in, RGBA8Premultiplied, 0, 1, out, RGBA8Premultiplied, 1, 1); err == nil {
		t.Fatal("expected error for zero width input, got nil")
	}
}
