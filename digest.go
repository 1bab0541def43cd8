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

import "hash"

// digest is the running checksum behind the hash.Hash32 front. The zero
// digest is invalid; New seeds it with 1.
type digest uint32

// New returns a hash.Hash32 computing the Adler-32 checksum through the
// tiered kernels, a drop-in for hash/adler32.New. It is not safe for
// concurrent use.
func New() hash.Hash32 {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() { *d = 1 }

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

// Write adds more data to the running checksum. It never returns an error.
func (d *digest) Write(p []byte) (int, error) {
	if len(p) > 0 {
		*d = digest(Update(uint32(*d), p))
	}
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return uint32(*d) }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
