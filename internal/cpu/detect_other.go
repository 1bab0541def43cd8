//go:build !amd64 && !arm64

package cpu

// Other architectures fall back to the scalar tier for now.
// riscv64 vector and wasm SIMD128 kernels would slot in here.
func detect() (Level, string) {
	return Scalar, "scalar"
}
