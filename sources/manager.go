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
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceManager picks a ValueSource for a file by its extension
type SourceManager struct {
	sources  []ValueSource
	fallback ValueSource
}

// NewSourceManager creates a new manager with all built-in sources
func NewSourceManager() *SourceManager {
	fallback := &TextSource{}

	manager := &SourceManager{
		fallback: fallback,
	}

	manager.RegisterSource(&JSONSource{})
	manager.RegisterSource(&YAMLSource{})
	manager.RegisterSource(&CSVSource{})
	manager.RegisterSource(fallback)

	return manager
}

// RegisterSource registers a new source, keeping sources sorted by priority
func (sm *SourceManager) RegisterSource(source ValueSource) {
	sm.sources = append(sm.sources, source)
	sort.SliceStable(sm.sources, func(i, j int) bool {
		return sm.sources[i].Priority() < sm.sources[j].Priority()
	})
}

// SourceFor returns the highest priority source supporting the path's extension,
// or the plain text source when none does
func (sm *SourceManager) SourceFor(path string) ValueSource {
	ext := strings.ToLower(filepath.Ext(path))
	for _, source := range sm.sources {
		if source.SupportsExtension(ext) {
			return source
		}
	}
	return sm.fallback
}

// ReadFile reads all integers from the file at path
func (sm *SourceManager) ReadFile(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	source := sm.SourceFor(path)
	values, err := source.Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s as %s: %v", path, source.Name(), err)
	}
	return values, nil
}
