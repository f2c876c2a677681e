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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextSource reads whitespace separated integers; '#' starts a comment
type TextSource struct{}

func (t *TextSource) Name() string {
	return "text"
}

func (t *TextSource) SupportsExtension(ext string) bool {
	return ext == ".txt" || ext == ""
}

func (t *TextSource) Priority() int {
	return 9 // Universal fallback
}

func (t *TextSource) Read(r io.Reader) ([]int, error) {
	var values []int

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		for _, field := range strings.Fields(line) {
			v, err := parseInt(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNo, err)
			}
			values = append(values, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
