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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/cybrota/ordset/orderedset"
)

func testLoaderConfig() LoaderConfig {
	config := defaultConfig.Loader
	config.ShowProgress = false
	return config
}

func TestLoaderCountsDuplicates(t *testing.T) {
	set := orderedset.New()
	loader := NewLoader(set, testLoaderConfig())

	var stats LoadStats
	loader.Add([]int{5, 3, 5, 8, 3, 3, -1}, &stats, nil)

	if stats.Read != 7 || stats.Inserted != 4 || stats.Duplicates != 3 {
		t.Errorf("stats = %+v; want Read 7, Inserted 4, Duplicates 3", stats)
	}
	if got := set.InOrder(); !slices.Equal(got, []int{-1, 3, 5, 8}) {
		t.Errorf("InOrder() = %v; want [-1 3 5 8]", got)
	}
}

func TestLoaderSeesExistingValues(t *testing.T) {
	set := orderedset.New()
	set.Insert(10)
	set.Insert(20)

	loader := NewLoader(set, testLoaderConfig())
	var stats LoadStats
	loader.Add([]int{10, 20, 30}, &stats, nil)

	if stats.Inserted != 1 || stats.Duplicates != 2 {
		t.Errorf("stats = %+v; want Inserted 1, Duplicates 2", stats)
	}
}

func TestLoaderAfterRemoval(t *testing.T) {
	set := orderedset.New()
	loader := NewLoader(set, testLoaderConfig())

	var stats LoadStats
	loader.Add([]int{1, 2}, &stats, nil)
	set.Remove(1)

	// the filter still remembers 1, the set decides
	stats = LoadStats{}
	loader.Add([]int{1}, &stats, nil)
	if stats.Inserted != 1 || !set.Contains(1) {
		t.Errorf("stats = %+v, Contains(1) = %v; want 1 re-inserted", stats, set.Contains(1))
	}
}

func TestLoaderLoadFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.txt":  "5 3\n8 # comment\n",
		"b.json": "[3, 1, 4]",
		"c.yaml": "values:\n  - 9\n  - 5\n",
		"d.csv":  "7,1\n",
	}
	var paths []string
	for _, name := range []string{"a.txt", "b.json", "c.yaml", "d.csv"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	set := orderedset.New()
	config := testLoaderConfig()
	config.ShowProgress = true
	loader := NewLoader(set, config)
	var progress bytes.Buffer
	loader.progressOut = &progress

	stats, err := loader.LoadFiles(paths)
	if err != nil {
		t.Fatalf("LoadFiles returned error: %v", err)
	}
	if stats.Files != 4 || stats.Read != 10 || stats.Inserted != 7 || stats.Duplicates != 3 {
		t.Errorf("stats = %+v; want Files 4, Read 10, Inserted 7, Duplicates 3", stats)
	}
	if got := set.InOrder(); !slices.Equal(got, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Errorf("InOrder() = %v; want [1 3 4 5 7 8 9]", got)
	}
	if err := set.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
	if progress.Len() == 0 {
		t.Errorf("no progress output written with show_progress enabled")
	}
}

func TestLoaderStopsAtBadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte("1 2"), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(orderedset.New(), testLoaderConfig())
	stats, err := loader.LoadFiles([]string{good, filepath.Join(dir, "missing.txt")})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("LoadFiles error = %v; want not found", err)
	}
	if stats.Files != 1 || stats.Inserted != 2 {
		t.Errorf("stats = %+v; want the first file counted", stats)
	}
}
