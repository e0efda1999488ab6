package dsp

// Package pack/unpack.
//
// The reference implementation generates on the order of sixty near-
// duplicate repack_row_* functions from a handful of C macros, one per
// (channel order in, storage in, alpha in, gamma in) x (same four, out)
// combination it cares about. Every one of those functions does the same
// four things in the same order -- gather channels per the input order,
// convert gamma/alpha as needed, scatter channels per the output order --
// so here they collapse into one generic implementation parameterized by
// Order, driven off PixelMetaTable instead of re-derived per call.

// UnpackRow64 reads n_pixels packed pixels (3 or 4 bytes each, depending on
// meta.Storage) from row_in and produces n_pixels wide64 accumulators in
// row_out, each channel placed in its canonical (R,G,B,A) lane regardless
// of the source byte order, and alpha premultiplied into R/G/B if the
// source is unassociated.
func UnpackRow64(meta PixelMeta, rowIn []byte, rowOut []wide64) {
	bpp := meta.BytesPerPixel()
	ord := meta.Order

	for i := range rowOut {
		px := rowIn[i*bpp : i*bpp+bpp]
		var ch [4]uint8
		for slot := 0; slot < ord.N; slot++ {
			ch[ord.Channels[slot]] = px[slot]
		}
		if !meta.HasAlpha {
			ch[3] = 0xff
		}

		if meta.Alpha == AlphaUnassociated && meta.HasAlpha {
			a := ch[3]
			ch[0] = PremulFrom8(ch[0], a)
			ch[1] = PremulFrom8(ch[1], a)
			ch[2] = PremulFrom8(ch[2], a)
		}

		rowOut[i] = packWide64(ch[0], ch[1], ch[2], ch[3])
	}
}

// PackRow64 is UnpackRow64's inverse: it reads wide64 accumulators (always
// premultiplied, straight sRGB-compressed channels) and writes packed
// pixels in the channel order and alpha association named by meta.
func PackRow64(meta PixelMeta, rowIn []wide64, rowOut []byte) {
	bpp := meta.BytesPerPixel()
	ord := meta.Order

	for i, w := range rowIn {
		c0, c1, c2, c3 := lanes64(w)
		ch := [4]uint8{uint8(c0), uint8(c1), uint8(c2), uint8(c3)}

		if meta.Alpha == AlphaUnassociated && meta.HasAlpha {
			a := ch[3]
			ch[0] = UnpremulTo8(ch[0], a)
			ch[1] = UnpremulTo8(ch[1], a)
			ch[2] = UnpremulTo8(ch[2], a)
		}

		px := rowOut[i*bpp : i*bpp+bpp]
		for slot := 0; slot < ord.N; slot++ {
			px[slot] = ch[ord.Channels[slot]]
		}
	}
}

// UnpackRow128 is UnpackRow64's 128bpp counterpart: channels are widened to
// 16 bits (via the sRGB-to-linear LUT when linearizing) so that premultiply
// and interpolation don't lose precision the way straight 8-bit math would
// on already-small alpha values.
func UnpackRow128(meta PixelMeta, rowIn []byte, rowOut []wide128, linearize bool) {
	bpp := meta.BytesPerPixel()
	ord := meta.Order

	for i := range rowOut {
		px := rowIn[i*bpp : i*bpp+bpp]
		var raw [4]uint8
		for slot := 0; slot < ord.N; slot++ {
			raw[ord.Channels[slot]] = px[slot]
		}
		if !meta.HasAlpha {
			raw[3] = 0xff
		}

		var ch [4]uint16
		for k := 0; k < 3; k++ {
			if linearize {
				ch[k] = LinearizeChannel(raw[k]) << 5 // 11-bit LUT output -> 16-bit lane scale
			} else {
				ch[k] = uint16(raw[k]) << 8
			}
		}
		ch[3] = uint16(raw[3]) << 8

		if meta.Alpha == AlphaUnassociated && meta.HasAlpha {
			a8 := raw[3]
			for k := 0; k < 3; k++ {
				ch[k] = uint16((uint32(ch[k])*uint32(a8) + 128) >> 8)
			}
		}

		rowOut[i] = packWide128(ch[0], ch[1], ch[2], ch[3])
	}
}

// PackRow128 is UnpackRow128's inverse.
func PackRow128(meta PixelMeta, rowIn []wide128, rowOut []byte, linearize bool) {
	bpp := meta.BytesPerPixel()
	ord := meta.Order

	for i, w := range rowIn {
		c0, c1, c2, c3 := lanes128(w)
		ch := [4]uint16{uint16(c0), uint16(c1), uint16(c2), uint16(c3)}
		// round8 narrows a 16-bit lane to 8 bits, rounding to nearest.
		round8 := func(v uint16) uint8 {
			if v >= 0xff80 {
				return 0xff
			}
			return uint8((v + 0x80) >> 8)
		}
		a8 := round8(ch[3])

		if meta.Alpha == AlphaUnassociated && meta.HasAlpha {
			for k := 0; k < 3; k++ {
				ch[k] = UnpremulTo16(ch[k], a8)
			}
		}

		var raw [4]uint8
		for k := 0; k < 3; k++ {
			if linearize {
				raw[k] = CompressChannel(ch[k] >> 5) // 16-bit -> 11-bit LUT index
			} else {
				raw[k] = round8(ch[k])
			}
		}
		raw[3] = a8

		px := rowOut[i*bpp : i*bpp+bpp]
		for slot := 0; slot < ord.N; slot++ {
			px[slot] = raw[ord.Channels[slot]]
		}
	}
}
