//go:build amd64 && !goexperiment.simd

package cpu

import "golang.org/x/sys/cpu"

func detect() (Level, string) {
	// The 64-byte kernel wants the full AVX-512 trio: F for the lanes,
	// BW for byte loads, VL for the narrower fallbacks on the same unit.
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL {
		return Vec512, "avx512"
	}
	if cpu.X86.HasAVX2 {
		return Vec256, "avx2"
	}
	// SSE2 is baseline for amd64.
	return Vec128, "sse2"
}
