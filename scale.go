package smolscale

// Scale resizes an entire image in one call: pixelsIn holds a tightly
// packed widthIn x heightIn image of pixelIn pixels, and pixelsOut must
// already be allocated to hold a tightly packed widthOut x heightOut
// image of pixelOut pixels. This is the single-threaded, single-call
// convenience wrapper around New + Batch; callers that want to scale
// across multiple goroutines, into a sub-rectangle of a larger buffer, or
// with non-default flags should build a Context directly.
func Scale(pixelsIn []byte, pixelIn PixelType, widthIn, heightIn int,
	pixelsOut []byte, pixelOut PixelType, widthOut, heightOut int) error {
	ctx, err := New(pixelIn, widthIn, heightIn, pixelOut, widthOut, heightOut)
	if err != nil {
		return err
	}
	return ctx.Batch(pixelsIn, pixelsOut, 0, heightOut, nil)
}
