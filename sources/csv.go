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
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVSource reads every non-blank cell of every record as an integer
type CSVSource struct{}

func (c *CSVSource) Name() string {
	return "csv"
}

func (c *CSVSource) SupportsExtension(ext string) bool {
	return ext == ".csv"
}

func (c *CSVSource) Priority() int {
	return 3
}

func (c *CSVSource) Read(r io.Reader) ([]int, error) {
	reader := csv.NewReader(io.LimitReader(r, MaxSourceSize))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var values []int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		for _, cell := range record {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			v, err := parseInt(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", line, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}
