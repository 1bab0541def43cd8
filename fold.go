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

// UpdateCopy folds src into the running checksum while copying it into
// dst, the write-through pattern of a decompressor that checksums its
// output window. dst must hold at least len(src) bytes; a shorter dst
// panics before any byte moves.
//
// The copy proceeds in nmax-sized strides so each stride is still
// cache-resident when the kernel reads it back.
func UpdateCopy(adler uint32, dst, src []byte) uint32 {
	if len(dst) < len(src) {
		panic("adler32: UpdateCopy dst shorter than src")
	}
	for len(src) > 0 {
		n := min(len(src), nmax)
		copy(dst[:n], src[:n])
		adler = Update(adler, src[:n])
		dst = dst[n:]
		src = src[n:]
	}
	return adler
}
