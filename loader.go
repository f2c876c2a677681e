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
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cybrota/ordset/orderedset"
	"github.com/cybrota/ordset/sources"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// LoadStats counts what happened to the values read by a Loader
type LoadStats struct {
	Files      int
	Read       int
	Inserted   int
	Duplicates int
}

// Loader bulk-inserts values from source files into an ordered set.
// A bloom filter in front of the set lets fresh values skip the Contains descent
// that duplicate accounting would otherwise need.
type Loader struct {
	set          *orderedset.Set
	sources      *sources.SourceManager
	bloomFilter  *bloom.BloomFilter
	showProgress bool
	progressOut  io.Writer
}

func NewLoader(set *orderedset.Set, config LoaderConfig) *Loader {
	loader := &Loader{
		set:          set,
		sources:      sources.NewSourceManager(),
		bloomFilter:  bloom.New(config.BloomSize, config.BloomHashes),
		showProgress: config.ShowProgress,
		progressOut:  os.Stderr,
	}

	// values already in the set must be visible to the filter
	set.Walk(orderedset.InOrder, func(v int) bool {
		loader.bloomFilter.Add(bloomKey(v))
		return true
	})

	return loader
}

func bloomKey(v int) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(v))
	return key[:]
}

// Add inserts values into the set and updates stats
func (l *Loader) Add(values []int, stats *LoadStats, bar *progressbar.ProgressBar) {
	for _, v := range values {
		stats.Read++
		key := bloomKey(v)
		if l.bloomFilter.Test(key) && l.set.Contains(v) {
			stats.Duplicates++
		} else {
			l.set.Insert(v)
			l.bloomFilter.Add(key)
			stats.Inserted++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
}

// LoadFiles reads every path through the source manager and inserts the values.
// It stops at the first unreadable file, returning the stats gathered so far.
func (l *Loader) LoadFiles(paths []string) (LoadStats, error) {
	var stats LoadStats

	for _, path := range paths {
		values, err := l.sources.ReadFile(path)
		if err != nil {
			return stats, err
		}

		var bar *progressbar.ProgressBar
		if l.showProgress {
			bar = progressbar.NewOptions(len(values),
				progressbar.OptionSetWriter(l.progressOut),
				progressbar.OptionSetDescription(fmt.Sprintf("📥 Loading %s...", filepath.Base(path))),
				progressbar.OptionSetWidth(50),
				progressbar.OptionShowCount(),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "█",
					SaucerHead:    "█",
					SaucerPadding: " ",
					BarStart:      "|",
					BarEnd:        "|",
				}),
			)
		}

		l.Add(values, &stats, bar)
		stats.Files++

		if bar != nil {
			_ = bar.Finish()
			fmt.Fprintln(l.progressOut)
		}
	}

	return stats, nil
}
