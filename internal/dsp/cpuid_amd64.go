//go:build amd64

package dsp

import "golang.org/x/sys/cpu"

// HasAVX2 returns true if the CPU and OS both support AVX2. Used by
// SelectImplementation to decide whether an accelerated Implementation is
// available; the engine itself never probes CPUID per row or per image.
func HasAVX2() bool {
	return cpu.X86.HasAVX2
}
