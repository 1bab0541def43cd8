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

import "github.com/chmduquesne/rollinghash"

// rolling maintains the checksum of a sliding window. a and b are the two
// Adler-32 sums of the current window; the window itself is a circular
// buffer whose oldest byte sits at index oldest.
type rolling struct {
	a, b uint32

	window []byte
	oldest int
	n      uint32
}

// NewRolling returns a rollinghash.Hash32 whose Roll method slides the
// window one byte in constant time. Write sets the window, computing its
// checksum through the tiered kernels; Roll then updates the checksum from
// just the entering and leaving bytes. Rsync-style scanners and
// content-defined chunkers checksum every window offset this way without
// rescanning.
func NewRolling() rollinghash.Hash32 {
	return &rolling{a: 1, window: make([]byte, 0)}
}

// Reset restores the initial state. The window capacity is kept.
func (d *rolling) Reset() {
	d.window = d.window[:0]
	d.a = 1
	d.b = 0
	d.n = 0
	d.oldest = 0
}

func (d *rolling) Size() int { return Size }

func (d *rolling) BlockSize() int { return 1 }

// Write replaces the window with p and seeds the rolling sums from its
// checksum. It never returns an error.
func (d *rolling) Write(p []byte) (int, error) {
	if len(d.window) != len(p) {
		if cap(d.window) >= len(p) {
			d.window = d.window[:len(p)]
		} else {
			d.window = make([]byte, len(p))
		}
	}
	copy(d.window, p)
	d.oldest = 0

	s := Checksum(d.window)
	d.a, d.b = s&0xffff, s>>16
	d.n = uint32(len(d.window)) % mod
	return len(p), nil
}

func (d *rolling) Sum32() uint32 {
	return d.b<<16 | d.a
}

func (d *rolling) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Roll slides the window one byte forward: the oldest byte leaves, c
// enters. Dropping the oldest byte removes n*leave+1 from b (the +1 is the
// checksum's leading seed shifting down one position); the entering byte
// arrives through the updated a. The added mod terms keep the unsigned
// arithmetic from wrapping below zero.
//
// Rolling an empty window materializes a one-byte window holding c.
func (d *rolling) Roll(c byte) {
	if len(d.window) == 0 {
		d.window = append(d.window, c)
	}
	enter := uint32(c)
	leave := uint32(d.window[d.oldest])
	d.window[d.oldest] = c
	d.oldest++
	if d.oldest >= len(d.window) {
		d.oldest = 0
	}

	d.a = (d.a + mod + enter - leave) % mod
	drop := (d.n*leave + 1) % mod
	d.b = (d.b + d.a + mod - drop) % mod
}
