package dsp

// HFilter64 and friends give every horizontal/vertical filter the same
// call shape so they can sit in one dispatch table keyed by (Storage,
// Filter), following the teacher package's function-pointer-table
// convention. Most filters need extra parameters
// (sample tables, halving counts, span multipliers) beyond what a single
// function signature can express uniformly, so unlike the teacher's
// tables these are assembled per-call in engine.go rather than stored as
// bare func values; Implementation instead records which variant
// (generic vs accelerated) produced them, which is the one thing that is
// actually selected once and reused.
type Implementation struct {
	Name string
	// AVX2 reports whether the host CPU supports AVX2 (and ForceGeneric was
	// not set); the filters that run are the generic ones either way.
	// Only the generic implementation ships in this port (see
	// cpuid_amd64.go and DESIGN.md for why): this field exists so engine
	// construction has a real seam to plug an accelerated Implementation
	// into, the same way the teacher's dsp dispatch table has a single
	// Init() call site that future platform-specific files can override.
	AVX2 bool
}

// GenericImplementation is always available; it exercises the pure-Go
// horizontal/vertical filters and unpack/pack/repack matrix defined in
// this package.
var GenericImplementation = Implementation{Name: "generic"}

// SelectImplementation picks which Implementation an engine should use.
// forceGeneric mirrors SMOL_FORCE_GENERIC_IMPL: callers that need
// reproducible output across machines (golden-file tests, cross-host
// diffing) set it to pin every engine to the generic path regardless of
// what the host CPU supports.
func SelectImplementation(forceGeneric bool) Implementation {
	if forceGeneric {
		return GenericImplementation
	}
	if HasAVX2() {
		// No AVX2 kernels are ported (see cpuid_amd64.go); record the
		// capability for callers that want to log it, but still run the
		// generic filters.
		impl := GenericImplementation
		impl.AVX2 = true
		return impl
	}
	return GenericImplementation
}
