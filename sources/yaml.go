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

	"gopkg.in/yaml.v3"
)

// YAMLSource reads a sequence of integers, or a mapping with a "values" sequence
type YAMLSource struct{}

type yamlValues struct {
	Values []int `yaml:"values"`
}

func (y *YAMLSource) Name() string {
	return "yaml"
}

func (y *YAMLSource) SupportsExtension(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

func (y *YAMLSource) Priority() int {
	return 2
}

func (y *YAMLSource) Read(r io.Reader) ([]int, error) {
	data, err := readLimited(r)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []int{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var values []int
		if err := root.Decode(&values); err != nil {
			return nil, err
		}
		return values, nil
	case yaml.MappingNode:
		var wrapped yamlValues
		if err := root.Decode(&wrapped); err != nil {
			return nil, err
		}
		if wrapped.Values == nil {
			return nil, fmt.Errorf("mapping has no \"values\" sequence")
		}
		return wrapped.Values, nil
	}
	return nil, fmt.Errorf("expected a sequence of integers or a mapping with \"values\"")
}
