// Un-premultiplication lookup table.
//
// Dividing a premultiplied channel by its alpha to recover the unassociated
// value is needed on every pixel that crosses a premultiplied/unassociated
// boundary, and a real division there is the single biggest cost in the
// pack path. invDivLUT replaces it with a multiply and a fixed shift:
// divide-by-alpha becomes multiply-by-invDivLUT[alpha], rounded and shifted
// right by invDivShift.
//
// The original implementation keeps three near-identical call sites for
// this (128bpp from interpolated/fixed alpha, 128bpp from premultiplied,
// 64bpp from premultiplied). They share one table and one shift and differ
// only in how far the numerator is pre-shifted before the multiply, so this
// port keeps the one table and exposes that as a parameter instead of three
// copies of the table.
package dsp

const (
	invDivShift = 21
	invDivRound = 1 << (invDivShift - 1)
)

var invDivLUT = [256]uint32{
	0, 2097152, 1048576, 699051, 524288, 419430, 349525, 299593,
	262144, 233017, 209715, 190650, 174763, 161319, 149797, 139810,
	131072, 123362, 116508, 110376, 104858, 99864, 95325, 91181,
	87381, 83886, 80660, 77672, 74898, 72316, 69905, 67650,
	65536, 63550, 61681, 59919, 58254, 56680, 55188, 53773,
	52429, 51150, 49932, 48771, 47663, 46603, 45590, 44620,
	43691, 42799, 41943, 41121, 40330, 39569, 38836, 38130,
	37449, 36792, 36158, 35545, 34953, 34380, 33825, 33288,
	32768, 32264, 31775, 31301, 30840, 30394, 29959, 29537,
	29127, 28728, 28340, 27962, 27594, 27236, 26887, 26546,
	26214, 25891, 25575, 25267, 24966, 24672, 24385, 24105,
	23831, 23564, 23302, 23046, 22795, 22550, 22310, 22075,
	21845, 21620, 21400, 21183, 20972, 20764, 20560, 20361,
	20165, 19973, 19784, 19600, 19418, 19240, 19065, 18893,
	18725, 18559, 18396, 18236, 18079, 17924, 17772, 17623,
	17476, 17332, 17190, 17050, 16913, 16777, 16644, 16513,
	16384, 16257, 16132, 16009, 15888, 15768, 15650, 15534,
	15420, 15308, 15197, 15087, 14980, 14873, 14769, 14665,
	14564, 14463, 14364, 14266, 14170, 14075, 13981, 13888,
	13797, 13707, 13618, 13530, 13443, 13358, 13273, 13190,
	13107, 13026, 12945, 12866, 12788, 12710, 12633, 12558,
	12483, 12409, 12336, 12264, 12193, 12122, 12053, 11984,
	11916, 11848, 11782, 11716, 11651, 11586, 11523, 11460,
	11398, 11336, 11275, 11215, 11155, 11096, 11038, 10980,
	10923, 10866, 10810, 10755, 10700, 10645, 10592, 10538,
	10486, 10434, 10382, 10331, 10280, 10230, 10180, 10131,
	10082, 10034, 9986, 9939, 9892, 9846, 9800, 9754,
	9709, 9664, 9620, 9576, 9533, 9489, 9447, 9404,
	9362, 9321, 9279, 9239, 9198, 9158, 9118, 9079,
	9039, 9001, 8962, 8924, 8886, 8849, 8812, 8775,
	8738, 8702, 8666, 8630, 8595, 8560, 8525, 8490,
	8456, 8422, 8389, 8355, 8322, 8289, 8257, 8224,
}

// invDivMul divides numerator by alpha, rounding to nearest, using
// the lookup table above. alpha is the 8-bit, un-premultiplied-scale alpha
// channel; numerator carries whatever extra fixed-point shift the caller
// needs undone in the same pass (see the three wrappers below).
func invDivMul(numerator uint32, alpha uint8) uint32 {
	if alpha == 0 {
		return 0
	}
	return uint32((uint64(numerator)*uint64(invDivLUT[alpha]) + invDivRound) >> invDivShift)
}

// UnpremulTo8 un-premultiplies an 8-bit channel value that was premultiplied
// by an 8-bit alpha, returning an 8-bit unassociated channel value. invDivMul
// computes numerator/alpha via the table; multiplying channel by 255 first
// turns that into channel*255/alpha, the exact inverse of PremulFrom8 at
// alpha 0xFF, and needs no further shift since the division already lands
// in 8-bit range. A premultiplied channel above its alpha would exceed 255
// and is clamped to 255.
func UnpremulTo8(channel uint8, alpha uint8) uint8 {
	v := invDivMul(uint32(channel)*255, alpha)
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

// UnpremulTo16 un-premultiplies a 16-bit channel value (premultiplied at
// 16-bit precision, as produced by the linearize-sRGB path or a 128bpp
// accumulator) against an 8-bit alpha, returning a 16-bit unassociated
// channel value. It computes channel*256/alpha, the inverse of
// UnpackRow128's channel*alpha/256 premultiply.
func UnpremulTo16(channel uint16, alpha uint8) uint16 {
	v := invDivMul(uint32(channel)<<8, alpha)
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// UnpremulInterpolatedTo16 is the same operation as UnpremulTo16 but for a
// channel that has already passed through bilinear interpolation at 128bpp
// precision (the "i" in unpremul_i_to_u): the caller is expected to have
// already folded in the same 256x pre-shift UnpremulTo16 applies internally,
// since an interpolated channel's fixed point may carry extra fractional
// bits that a blind re-shift here would double-count.
func UnpremulInterpolatedTo16(channel uint32, alpha uint8) uint16 {
	v := invDivMul(channel, alpha)
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// PremulFrom8 premultiplies an 8-bit unassociated channel by an 8-bit alpha,
// producing the 64bpp premultiplied channel value. Unlike un-premultiplication
// this is an exact multiply, not a table lookup: (channel*alpha + round)/255,
// approximated with the standard /257 rounding trick.
func PremulFrom8(channel uint8, alpha uint8) uint8 {
	v := uint32(channel) * uint32(alpha)
	return uint8((v + 128 + (v >> 8)) >> 8)
}
