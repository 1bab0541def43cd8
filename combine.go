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

// Combine merges two Adler-32 checksums. For byte sequences seq1 and seq2
// with checksums adler1 and adler2, Combine returns the checksum of seq1
// followed by seq2, needing only len(seq2). This lets concatenations and
// parallel scans checksum pieces independently and join the results in
// constant time.
//
// A negative len2 returns 0xffffffff, never a valid checksum, as a
// debugging clue.
func Combine(adler1, adler2 uint32, len2 int) uint32 {
	if len2 < 0 {
		return 0xffffffff
	}

	// Shifting seq1's sums under seq2's checksum: each of seq1's bytes,
	// plus its implicit leading 1, joins s2 once per byte of seq2, a
	// multiplication by len2 % mod after reduction.
	rem := uint32(uint64(len2) % mod)
	sum1 := adler1 & 0xffff
	sum2 := rem * sum1
	sum2 %= mod
	sum1 += (adler2 & 0xffff) + mod - 1
	sum2 += ((adler1 >> 16) & 0xffff) + ((adler2 >> 16) & 0xffff) + mod - rem
	if sum1 >= mod {
		sum1 -= mod
	}
	if sum1 >= mod {
		sum1 -= mod
	}
	if sum2 >= mod<<1 {
		sum2 -= mod << 1
	}
	if sum2 >= mod {
		sum2 -= mod
	}
	return sum2<<16 | sum1
}
