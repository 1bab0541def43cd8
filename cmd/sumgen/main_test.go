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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWeightRows(t *testing.T) {
	rows := weightRows(64)
	if len(rows) != 8 {
		t.Fatalf("weightRows(64) returned %d rows, want 8", len(rows))
	}
	if rows[0] != "64, 63, 62, 61, 60, 59, 58, 57," {
		t.Errorf("first row = %q", rows[0])
	}
	if rows[7] != "8, 7, 6, 5, 4, 3, 2, 1," {
		t.Errorf("last row = %q", rows[7])
	}

	rows = weightRows(16)
	if len(rows) != 2 {
		t.Fatalf("weightRows(16) returned %d rows, want 2", len(rows))
	}
	if rows[1] != "8, 7, 6, 5, 4, 3, 2, 1," {
		t.Errorf("last row = %q", rows[1])
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	for _, w := range widths {
		if err := generate(dir, w); err != nil {
			t.Fatalf("generate(%d): %v", w.Bits, err)
		}
	}

	for _, tt := range []struct {
		file  string
		marks []string
	}{
		{"vec512.gen.go", []string{"func updateVec512", "vec512Lanes = 16", "vec512Shift = 6"}},
		{"vec256.gen.go", []string{"func updateVec256", "vec256Lanes = 8", "vec256Shift = 5"}},
		{"vec128.gen.go", []string{"func updateVec128", "vec128Lanes = 4", "vec128Shift = 4"}},
	} {
		src, err := os.ReadFile(filepath.Join(dir, tt.file))
		if err != nil {
			t.Fatal(err)
		}
		text := string(src)
		if !strings.HasPrefix(text, "// Code generated by sumgen. DO NOT EDIT.") {
			t.Errorf("%s: missing generated-code marker", tt.file)
		}
		for _, mark := range tt.marks {
			if !strings.Contains(text, mark) {
				t.Errorf("%s: missing %q", tt.file, mark)
			}
		}
	}
}
