//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

func detect() (Level, string) {
	// ARMv8 mandates Advanced SIMD, so the guard only matters on
	// unusual kernels that mask the feature.
	if cpu.ARM64.HasASIMD {
		return Vec128, "neon"
	}
	return Scalar, "scalar"
}
