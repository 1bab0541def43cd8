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

// scalarUpdate is the portable full-length implementation and the fallback
// tier on hosts without vector support. It unrolls the byte loop four ways
// and reduces modulo mod once per nmax bytes.
func scalarUpdate(adler uint32, p []byte) uint32 {
	s1 := adler & 0xffff
	s2 := adler >> 16
	for len(p) > 0 {
		var q []byte
		if len(p) > nmax {
			p, q = p[:nmax], p[nmax:]
		}
		for len(p) >= 4 {
			s1 += uint32(p[0])
			s2 += s1
			s1 += uint32(p[1])
			s2 += s1
			s1 += uint32(p[2])
			s2 += s1
			s1 += uint32(p[3])
			s2 += s1
			p = p[4:]
		}
		for _, b := range p {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= mod
		s2 %= mod
		p = q
	}
	return s2<<16 | s1
}

// scalarSmall finishes runs shorter than nmax bytes: byte-at-a-time
// accumulation with a single reduction at the end. Kernels use it for
// their sub-block tails.
func scalarSmall(s1, s2 uint32, p []byte) uint32 {
	for _, b := range p {
		s1 += uint32(b)
		s2 += s1
	}
	s1 %= mod
	s2 %= mod
	return s2<<16 | s1
}

// scalarLen1 is the closed-form single-byte update.
func scalarLen1(s1, s2 uint32, b byte) uint32 {
	s1 += uint32(b)
	s1 %= mod
	s2 += s1
	s2 %= mod
	return s2<<16 | s1
}
