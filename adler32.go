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

// Package adler32 computes the Adler-32 checksum (RFC 1950 section 8.2)
// through size- and capability-tiered kernels.
//
// The checksum packs two 16-bit modular sums into a uint32 as s2<<16 | s1,
// where s1 is 1 plus the sum of all bytes and s2 is the sum of every
// intermediate s1, both modulo 65521. Large inputs run through lane-parallel
// kernels sized to the widest vector class the host CPU supports; small
// inputs take scalar paths where kernel setup costs more than it saves.
// Every tier produces bit-identical results.
package adler32

import "github.com/ajroetker/go-adler32/internal/cpu"

const (
	// mod is the largest prime smaller than 65536.
	mod = 65521

	// nmax is the largest n such that
	// 255*n*(n+1)/2 + (n+1)*(mod-1) <= 2^32-1, the longest run of bytes
	// whose unreduced sums still fit a uint32. Kernels reduce modulo mod
	// at least once every nmax bytes.
	nmax = 5552
)

// Size of an Adler-32 checksum in bytes.
const Size = 4

// Size-based dispatch thresholds.
// Tuned empirically - adjust based on benchmarks on target hardware.
const (
	// Below this length a plain byte loop beats any kernel: one
	// reduction at the end, no lane setup at all.
	smallCutoff = 16

	// Below this length the 256-bit-class kernel cannot fill a block,
	// so the 128-bit-class kernel runs instead.
	vec256Cutoff = 32

	// Below this length the 512-bit-class kernel cannot fill a block,
	// so the 256-bit-class kernel runs instead.
	vec512Cutoff = 64
)

// Update folds p into the running checksum and returns the new checksum.
// The initial checksum for an empty stream is 1.
//
// A nil p resets the checksum to 1, mirroring zlib's adler32(adler, NULL, 0)
// convention; an empty non-nil p returns adler unchanged.
func Update(adler uint32, p []byte) uint32 {
	if p == nil {
		return 1
	}
	if len(p) == 1 {
		return scalarLen1(adler&0xffff, adler>>16, p[0])
	}
	if len(p) < smallCutoff {
		return scalarSmall(adler&0xffff, adler>>16, p)
	}
	switch level {
	case cpu.Vec512:
		if len(p) < vec256Cutoff {
			return updateVec128(adler, p)
		}
		if len(p) < vec512Cutoff {
			return updateVec256(adler, p)
		}
		return updateVec512(adler, p)
	case cpu.Vec256:
		if len(p) < vec256Cutoff {
			return updateVec128(adler, p)
		}
		return updateVec256(adler, p)
	case cpu.Vec128:
		return updateVec128(adler, p)
	default:
		return scalarUpdate(adler, p)
	}
}

// Checksum returns the Adler-32 checksum of data.
func Checksum(data []byte) uint32 {
	return Update(1, data)
}
