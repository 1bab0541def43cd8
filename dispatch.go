package adler32

import "github.com/ajroetker/go-adler32/internal/cpu"

// level is fixed at startup; Update never re-detects.
var level = cpu.Detect()

// Kernel reports the name of the widest kernel Update can select on this
// host: "avx512", "avx2", "sse2", "neon", or "scalar". Setting the
// ADLER32_NO_SIMD environment variable before startup forces "scalar".
func Kernel() string {
	return cpu.Name()
}
