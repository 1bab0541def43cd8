// Copyright 2026 go-adler32 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package adler32

import "testing"

var kernels = []struct {
	name string
	fn   func(uint32, []byte) uint32
}{
	{"vec512", updateVec512},
	{"vec256", updateVec256},
	{"vec128", updateVec128},
	{"scalar", scalarUpdate},
}

// TestKernelBoundaries exercises every kernel at the lengths where block
// and chunk handling changes shape: around each block size, around the
// 2x-unroll pairing, and around the nmax reduction stride.
func TestKernelBoundaries(t *testing.T) {
	var sizes []int
	for _, block := range []int{vec128Block, vec256Block, vec512Block} {
		sizes = append(sizes,
			block-1, block, block+1,
			2*block-1, 2*block, 2*block+1,
			3*block, 5*block+3)
	}
	sizes = append(sizes,
		nmax-1, nmax, nmax+1,
		nmax+vec512Block, 2*nmax, 2*nmax+1, 4*nmax+3)

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for _, n := range sizes {
				p := randBytes(n)
				for _, adler := range []uint32{1, 0x12345678, maxAdler} {
					got := k.fn(adler, p)
					want := refUpdate(adler, p)
					if got != want {
						t.Errorf("len %d adler %#x: got %#08x, want %#08x", n, adler, got, want)
					}
				}
			}
		})
	}
}

// TestKernelWeights plants a single 0xff at every position of multi-block
// inputs. A weight table off by one position, or a bad cross-block fold,
// shows up as a mismatch at exactly that position.
func TestKernelWeights(t *testing.T) {
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			// Two blocks hits the paired loop, three the peel.
			for _, n := range []int{2 * vec512Block, 3 * vec512Block} {
				for pos := 0; pos < n; pos++ {
					p := make([]byte, n)
					p[pos] = 0xff
					got := k.fn(1, p)
					want := refUpdate(1, p)
					if got != want {
						t.Fatalf("len %d pos %d: got %#08x, want %#08x", n, pos, got, want)
					}
				}
			}
		})
	}
}

// TestKernelsAgree checks all kernels against each other on random data,
// the cross-tier bit-equality contract behind the size dispatch.
func TestKernelsAgree(t *testing.T) {
	for _, n := range []int{0, 5, 16, 64, 333, 4096, nmax + 13, 3 * nmax} {
		p := randBytes(n)
		want := kernels[0].fn(1, p)
		for _, k := range kernels[1:] {
			if got := k.fn(1, p); got != want {
				t.Errorf("len %d: %s = %#08x, %s = %#08x",
					n, k.name, got, kernels[0].name, want)
			}
		}
	}
}

func TestScalarLen1(t *testing.T) {
	for _, adler := range []uint32{1, 0x12345678, maxAdler} {
		for b := 0; b < 256; b++ {
			got := scalarLen1(adler&0xffff, adler>>16, byte(b))
			want := refUpdate(adler, []byte{byte(b)})
			if got != want {
				t.Fatalf("adler %#x byte %#x: got %#08x, want %#08x", adler, b, got, want)
			}
		}
	}
}

func TestScalarSmall(t *testing.T) {
	for n := 0; n <= 2*vec512Block; n++ {
		p := randBytes(n)
		for _, adler := range []uint32{1, 0x12345678, maxAdler} {
			got := scalarSmall(adler&0xffff, adler>>16, p)
			want := refUpdate(adler, p)
			if got != want {
				t.Errorf("len %d adler %#x: got %#08x, want %#08x", n, adler, got, want)
			}
		}
	}
}

func TestWeightTables(t *testing.T) {
	tables := []struct {
		name    string
		weights []uint32
	}{
		{"vec512", vec512Weights[:]},
		{"vec256", vec256Weights[:]},
		{"vec128", vec128Weights[:]},
	}
	for _, tt := range tables {
		block := len(tt.weights)
		for i, w := range tt.weights {
			if want := uint32(block - i); w != want {
				t.Errorf("%sWeights[%d] = %d, want %d", tt.name, i, w, want)
			}
		}
	}
	if vec512Block != 4*vec512Lanes || vec256Block != 4*vec256Lanes || vec128Block != 4*vec128Lanes {
		t.Error("block sizes must be 4 bytes per lane")
	}
	for _, tt := range []struct {
		block, shift int
	}{{vec512Block, vec512Shift}, {vec256Block, vec256Shift}, {vec128Block, vec128Shift}} {
		if 1<<tt.shift != tt.block {
			t.Errorf("shift %d does not match block %d", tt.shift, tt.block)
		}
	}
}
