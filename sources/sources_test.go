// Copyright 2025 Naren Yellavula
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

package sources

import (
	"slices"
	"strings"
	"testing"
)

func TestSourcesRead(t *testing.T) {
	tests := []struct {
		name     string
		source   ValueSource
		input    string
		expected []int
		wantErr  bool
	}{
		{"text lines", &TextSource{}, "5 3 8\n1\n", []int{5, 3, 8, 1}, false},
		{"text comments", &TextSource{}, "# header\n4 +2 # trailing\n-7\n", []int{4, 2, -7}, false},
		{"text empty", &TextSource{}, "", nil, false},
		{"text invalid", &TextSource{}, "1 two 3", nil, true},
		{"csv records", &CSVSource{}, "1,2,3\n4, 5,\n", []int{1, 2, 3, 4, 5}, false},
		{"csv ragged", &CSVSource{}, "1\n2,3,4\n", []int{1, 2, 3, 4}, false},
		{"csv invalid", &CSVSource{}, "1,x\n", nil, true},
		{"json array", &JSONSource{}, "[3, 1, 2]", []int{3, 1, 2}, false},
		{"json object", &JSONSource{}, `{"values": [-1, 0, 1], "name": "demo"}`, []int{-1, 0, 1}, false},
		{"json empty", &JSONSource{}, "  ", []int{}, false},
		{"json float", &JSONSource{}, "[1.5]", nil, true},
		{"json string element", &JSONSource{}, `[1, "2"]`, nil, true},
		{"json malformed", &JSONSource{}, "[1, 2", nil, true},
		{"json scalar", &JSONSource{}, "42", nil, true},
		{"yaml sequence", &YAMLSource{}, "- 9\n- 8\n", []int{9, 8}, false},
		{"yaml flow", &YAMLSource{}, "[1, 2, 3]\n", []int{1, 2, 3}, false},
		{"yaml mapping", &YAMLSource{}, "values:\n  - 10\n  - 20\n", []int{10, 20}, false},
		{"yaml empty", &YAMLSource{}, "", []int{}, false},
		{"yaml mapping without values", &YAMLSource{}, "other: 1\n", nil, true},
		{"yaml invalid", &YAMLSource{}, "- a\n", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.source.Read(strings.NewReader(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Errorf("Read(%q) = %v; want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read(%q) returned error: %v", tc.input, err)
			}
			if !slices.Equal(got, tc.expected) {
				t.Errorf("Read(%q) = %v; want %v", tc.input, got, tc.expected)
			}
		})
	}
}
