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
	"strconv"
	"strings"
)

const (
	MaxSourceSize = 64 * 1024 * 1024 // 64MB
)

// ValueSource defines the interface for readers that turn a file format into integers
type ValueSource interface {
	Read(r io.Reader) ([]int, error)
	SupportsExtension(ext string) bool
	Priority() int // Lower number = higher priority
	Name() string
}

// readLimited reads at most MaxSourceSize bytes from r
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSourceSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSourceSize {
		return nil, fmt.Errorf("source exceeds %d bytes", MaxSourceSize)
	}
	return data, nil
}

// parseInt parses a base-10 integer token, tolerating surrounding spaces and a leading '+'
func parseInt(token string) (int, error) {
	v, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(token), "+"))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", token)
	}
	return v, nil
}
