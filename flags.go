package smolscale

// Flags controls optional behavior of a Context.
type Flags uint32

const (
	// ForceGeneric pins scaling to the portable Go implementation even if
	// the host CPU supports an accelerated one. Use this for reproducible
	// output across machines (golden-file tests, cross-host diffing).
	ForceGeneric Flags = 1 << iota

	// LinearizeSRGB converts sRGB-compressed input to linear light before
	// filtering and compresses back to sRGB on output. This avoids the
	// characteristic darkening/ringing of resampling directly in
	// gamma-compressed space, at the cost of 128bpp-wide accumulators
	// (more memory and work per row) even for 8-bit-per-channel input.
	LinearizeSRGB
)

func (f Flags) has(bit Flags) bool {
	return f&bit != 0
}
