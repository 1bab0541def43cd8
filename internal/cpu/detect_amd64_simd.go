//go:build amd64 && goexperiment.simd

package cpu

import "simd/archsimd"

func detect() (Level, string) {
	// Use actual CPU detection from archsimd package
	if archsimd.X86.AVX512() {
		return Vec512, "avx512"
	}
	if archsimd.X86.AVX2() {
		return Vec256, "avx2"
	}
	// SSE2 is baseline for amd64.
	return Vec128, "sse2"
}
