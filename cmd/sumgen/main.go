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

// sumgen renders the per-width checksum kernels (vec512.gen.go,
// vec256.gen.go, vec128.gen.go) from a single template. The widths differ
// only in lane count, block size, and weight table; generating them keeps
// the three kernels mechanically identical.
//
// Usage:
//
//	go run ./cmd/sumgen -dir .
package main

import (
	"flag"
	"fmt"
	"go/format"
	"math/bits"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// width describes one kernel tier. Block is always 4*Lanes: each uint32
// lane consumes four bytes per block, matching a Bits-wide byte register
// widened into Lanes dword accumulators.
type width struct {
	Bits  int
	Lanes int
	Block int
	Shift int
	Lower string
	Name  string
	Rows  []string
}

var widths = []width{
	{Bits: 512, Lanes: 16},
	{Bits: 256, Lanes: 8},
	{Bits: 128, Lanes: 4},
}

func main() {
	dir := flag.String("dir", ".", "directory to write generated kernels into")
	flag.Parse()

	for _, w := range widths {
		if err := generate(*dir, w); err != nil {
			fmt.Fprintf(os.Stderr, "sumgen: %v\n", err)
			os.Exit(1)
		}
	}
}

func generate(dir string, w width) error {
	w.Block = w.Lanes * 4
	w.Shift = bits.TrailingZeros(uint(w.Block))
	w.Lower = fmt.Sprintf("vec%d", w.Bits)
	w.Name = cases.Title(language.English).String(w.Lower)
	w.Rows = weightRows(w.Block)

	var sb strings.Builder
	if err := kernelTemplate.Execute(&sb, w); err != nil {
		return fmt.Errorf("render %s: %w", w.Lower, err)
	}

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return fmt.Errorf("format %s: %w", w.Lower, err)
	}

	filename := filepath.Join(dir, w.Lower+".gen.go")
	src, err = imports.Process(filename, src, nil)
	if err != nil {
		return fmt.Errorf("imports %s: %w", w.Lower, err)
	}
	if err := os.WriteFile(filename, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	fmt.Printf("Generated: %s\n", filename)
	return nil
}

// weightRows formats the descending weight table block..1 as source lines
// of eight values each.
func weightRows(block int) []string {
	rows := make([]string, 0, block/8)
	for row := 0; row < block; row += 8 {
		parts := make([]string, 8)
		for i := range parts {
			parts[i] = strconv.Itoa(block - row - i)
		}
		rows = append(rows, strings.Join(parts, ", ")+",")
	}
	return rows
}

var kernelTemplate = template.Must(template.New("kernel").Parse(`// Code generated by sumgen. DO NOT EDIT.

package adler32

// {{.Bits}}-bit-class kernel: {{.Block}}-byte blocks over {{.Lanes}} uint32 lanes.
// Lane l owns bytes 4l..4l+3 of each block. vs1 holds per-lane byte sums,
// vs2 weighted dot-products, vs3 the prefix sums of vs1 across blocks.
// Bytes of an earlier block outrank all {{.Block}} bytes of a later one, so the
// cross-block share of s2 folds in as vs3<<{{.Shift}}.

const (
	{{.Lower}}Lanes = {{.Lanes}}
	{{.Lower}}Block = {{.Block}}
	{{.Lower}}Shift = {{.Shift}}
)

// {{.Lower}}Weights descends from {{.Block}} to 1: the earliest byte of a block
// joins s2 once per remaining byte, so it carries the largest weight.
var {{.Lower}}Weights = [{{.Lower}}Block]uint32{
{{- range .Rows}}
	{{.}}
{{- end}}
}

// update{{.Name}} advances the checksum over p, draining it to a sub-block
// tail that scalarSmall finishes.
func update{{.Name}}(adler uint32, p []byte) uint32 {
	s1 := adler & 0xffff
	s2 := adler >> 16
	vs1 := [{{.Lower}}Lanes]uint32{s1}
	vs2 := [{{.Lower}}Lanes]uint32{s2}
	for len(p) >= {{.Lower}}Block {
		// Cap the chunk at nmax so the horizontal sums cannot
		// overflow, then trim it to whole blocks.
		k := min(len(p), nmax)
		k -= k % {{.Lower}}Block
		chunk := p[:k]
		p = p[k:]

		vs1Prev := vs1
		var vs3, vs2b [{{.Lower}}Lanes]uint32
		if (k/{{.Lower}}Block)%2 == 1 {
			// Odd block count: peel one block so the main loop
			// runs on pairs.
			{{.Lower}}Accum(&vs1, &vs2, chunk)
			for l := range vs3 {
				vs3[l] += vs1Prev[l]
			}
			vs1Prev = vs1
			chunk = chunk[{{.Lower}}Block:]
		}
		for len(chunk) > 0 {
			{{.Lower}}Accum(&vs1, &vs2, chunk)
			// vs1Prev is the prefix before the first block of the
			// pair, vs1 the prefix before the second.
			for l := range vs3 {
				vs3[l] += vs1Prev[l] + vs1[l]
			}
			{{.Lower}}Accum(&vs1, &vs2b, chunk[{{.Lower}}Block:])
			vs1Prev = vs1
			chunk = chunk[2*{{.Lower}}Block:]
		}

		var hs1, hs2 uint32
		for l := range vs1 {
			hs1 += vs1[l]
			hs2 += vs2[l] + vs2b[l] + vs3[l]<<{{.Lower}}Shift
		}
		s1 = hs1 % mod
		s2 = hs2 % mod
		vs1 = [{{.Lower}}Lanes]uint32{s1}
		vs2 = [{{.Lower}}Lanes]uint32{s2}
	}
	return scalarSmall(s1, s2, p)
}

// {{.Lower}}Accum folds the first {{.Lower}}Block bytes of q into the lanes.
func {{.Lower}}Accum(vs1, vs2 *[{{.Lower}}Lanes]uint32, q []byte) {
	q = q[:{{.Lower}}Block]
	for l := range {{.Lower}}Lanes {
		i := l * 4
		b0 := uint32(q[i])
		b1 := uint32(q[i+1])
		b2 := uint32(q[i+2])
		b3 := uint32(q[i+3])
		vs1[l] += b0 + b1 + b2 + b3
		vs2[l] += b0*{{.Lower}}Weights[i] + b1*{{.Lower}}Weights[i+1] + b2*{{.Lower}}Weights[i+2] + b3*{{.Lower}}Weights[i+3]
	}
}
`))
