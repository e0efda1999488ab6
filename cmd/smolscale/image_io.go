package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/smolscale/smolscale"
)

// decodeImage loads path and returns its pixels packed as
// smolscale.RGBA8Unassociated, along with its dimensions.
func decodeImage(path string) (pixels []byte, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	pixels = make([]byte, width*height*4)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pixels[i+0] = uint8(r >> 8)
			pixels[i+1] = uint8(g >> 8)
			pixels[i+2] = uint8(b >> 8)
			pixels[i+3] = uint8(a >> 8)
			i += 4
		}
	}

	return pixels, width, height, nil
}

// encodeImage writes a smolscale.RGBA8Unassociated pixel buffer to path,
// choosing an encoder from the file extension: .bmp uses
// golang.org/x/image/bmp (a byte-exact round trip, useful for verifying
// the scaler itself rather than a lossy codec), .jpg/.jpeg uses stdlib
// image/jpeg, and anything else falls back to stdlib image/png.
func encodeImage(path string, pixels []byte, width, height int) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	default:
		return png.Encode(f, img)
	}
}

// parsePixelType maps a CLI-friendly name to a smolscale.PixelType, used
// by subcommands that need to exercise a specific packed format rather
// than always routing through RGBA8Unassociated.
func parsePixelType(name string) (smolscale.PixelType, error) {
	switch strings.ToLower(name) {
	case "rgba8-premultiplied", "rgba8pre":
		return smolscale.RGBA8Premultiplied, nil
	case "bgra8-premultiplied", "bgra8pre":
		return smolscale.BGRA8Premultiplied, nil
	case "argb8-premultiplied", "argb8pre":
		return smolscale.ARGB8Premultiplied, nil
	case "abgr8-premultiplied", "abgr8pre":
		return smolscale.ABGR8Premultiplied, nil
	case "rgba8-unassociated", "rgba8", "rgba8un":
		return smolscale.RGBA8Unassociated, nil
	case "bgra8-unassociated", "bgra8", "bgra8un":
		return smolscale.BGRA8Unassociated, nil
	case "argb8-unassociated", "argb8", "argb8un":
		return smolscale.ARGB8Unassociated, nil
	case "abgr8-unassociated", "abgr8", "abgr8un":
		return smolscale.ABGR8Unassociated, nil
	case "rgb8":
		return smolscale.RGB8, nil
	case "bgr8":
		return smolscale.BGR8, nil
	default:
		return 0, fmt.Errorf("unknown pixel type %q", name)
	}
}
