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

// Package cpu selects the widest checksum kernel class the host supports.
package cpu

import (
	"os"
	"sync"
)

// Level is a kernel tier, named for the vector register class it needs.
type Level int

const (
	Scalar Level = iota
	Vec128
	Vec256
	Vec512
)

func (l Level) String() string {
	switch l {
	case Vec512:
		return "vec512"
	case Vec256:
		return "vec256"
	case Vec128:
		return "vec128"
	default:
		return "scalar"
	}
}

// noSimdEnv disables all vector kernels when set, for debugging and for
// pinning down misbehaving hardware.
const noSimdEnv = "ADLER32_NO_SIMD"

var (
	once  sync.Once
	level Level
	name  string
)

// Detect returns the widest Level the host CPU supports. The result is
// computed once and cached for the life of the process.
func Detect() Level {
	once.Do(run)
	return level
}

// Name returns the microarchitecture name behind Detect's Level, such as
// "avx512" or "neon".
func Name() string {
	once.Do(run)
	return name
}

func run() {
	if disabled() {
		level, name = Scalar, "scalar"
		return
	}
	level, name = detect()
}

func disabled() bool {
	return os.Getenv(noSimdEnv) != ""
}
