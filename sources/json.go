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
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

// JSONSource reads a top-level array of integers, or an object with a "values" array
type JSONSource struct{}

func (j *JSONSource) Name() string {
	return "json"
}

func (j *JSONSource) SupportsExtension(ext string) bool {
	return ext == ".json"
}

func (j *JSONSource) Priority() int {
	return 1
}

func (j *JSONSource) Read(r io.Reader) ([]int, error) {
	data, err := readLimited(r)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return []int{}, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("malformed JSON")
	}

	doc := gjson.ParseBytes(data)
	if doc.IsObject() {
		doc = doc.Get("values")
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("expected an array of integers or an object with a \"values\" array")
	}

	elems := doc.Array()
	values := make([]int, 0, len(elems))
	for i, elem := range elems {
		if elem.Type != gjson.Number {
			return nil, fmt.Errorf("element %d: expected a number, got %s", i, elem.Raw)
		}
		v, err := parseInt(elem.Raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %v", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}
