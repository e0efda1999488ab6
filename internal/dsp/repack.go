package dsp

// RepackDirect converts one row directly from pixelIn's packed format to
// pixelOut's, without an intervening resample. It's the no-op-resize path
// RunBatch64/RunBatch128 take whenever both dimensions are unchanged and no
// edge feathering applies (see isDirectRepack in engine.go), mirroring the
// reference implementation's repack_row_* fast paths: same width in and
// out, just a format change (e.g. premultiplying alpha, swapping channel
// order, or both), with no filtering step in between.
func RepackDirect(pixelIn, pixelOut int, linearize bool, rowIn, rowOut []byte, nPixels int) {
	metaIn := PixelMetaTable[pixelIn]
	metaOut := PixelMetaTable[pixelOut]

	if metaIn == metaOut {
		copy(rowOut, rowIn[:nPixels*metaIn.BytesPerPixel()])
		return
	}

	if linearize {
		scratch := make([]wide128, nPixels)
		UnpackRow128(metaIn, rowIn, scratch, true)
		PackRow128(metaOut, scratch, rowOut, true)
		return
	}

	scratch := make([]wide64, nPixels)
	UnpackRow64(metaIn, rowIn, scratch)
	PackRow64(metaOut, scratch, rowOut)
}
