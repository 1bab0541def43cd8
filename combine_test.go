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

func TestCombine(t *testing.T) {
	lens := []int{0, 1, 15, 16, 64, 333, 4096, nmax, nmax + 1, 2*nmax + 5}
	for _, n1 := range lens {
		for _, n2 := range lens {
			p1 := randBytes(n1)
			p2 := randBytes(n2)
			want := Checksum(append(append([]byte{}, p1...), p2...))
			got := Combine(Checksum(p1), Checksum(p2), len(p2))
			if got != want {
				t.Errorf("lens %d+%d: Combine = %#08x, want %#08x", n1, n2, got, want)
			}
		}
	}
}

func TestCombineIdentity(t *testing.T) {
	for _, n := range []int{0, 1, 100, nmax} {
		c := Checksum(randBytes(n))
		// Appending the empty sequence must not move the checksum.
		if got := Combine(c, 1, 0); got != c {
			t.Errorf("len %d: Combine(c, 1, 0) = %#08x, want %#08x", n, got, c)
		}
	}
}

func TestCombineChain(t *testing.T) {
	p1, p2, p3 := randBytes(1000), randBytes(nmax+9), randBytes(77)
	all := append(append(append([]byte{}, p1...), p2...), p3...)
	got := Combine(Combine(Checksum(p1), Checksum(p2), len(p2)), Checksum(p3), len(p3))
	if want := Checksum(all); got != want {
		t.Errorf("chained Combine = %#08x, want %#08x", got, want)
	}
}

func TestCombineNegativeLength(t *testing.T) {
	if got := Combine(0x11e60398, 0x024d0127, -1); got != 0xffffffff {
		t.Errorf("Combine(len2 < 0) = %#08x, want 0xffffffff", got)
	}
}
