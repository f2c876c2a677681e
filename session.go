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
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/ordset/orderedset"
	"github.com/patrickmn/go-cache"
)

const emptyMarker = "(empty)"

// Session runs text commands against one ordered set. Like the set itself it
// must only be used from one goroutine.
type Session struct {
	set     *orderedset.Set
	renders *cache.Cache
}

func NewSession(set *orderedset.Set, renders *cache.Cache) *Session {
	return &Session{set: set, renders: renders}
}

// Set returns the underlying ordered set
func (s *Session) Set() *orderedset.Set {
	return s.set
}

// Exec parses and runs a single command line
func (s *Session) Exec(line string) (string, error) {
	parts, err := splitCommand(line)
	if err != nil {
		return "", err
	}
	if len(parts) == 0 {
		return "", nil
	}

	cmd, err := lookupCommand(parts[0])
	if err != nil {
		return "", err
	}
	args, err := parseArgs(cmd, parts[1:])
	if err != nil {
		return "", err
	}

	out, err := cmd.Run(s, args)
	if cmd.Mutates {
		InvalidateRenders(s.renders)
	}
	return out, err
}

// ScriptResult is the outcome of one statement of a script
type ScriptResult struct {
	Statement string
	Output    string
	Err       error
}

// ExecScript runs every ';' or newline separated statement, continuing past errors
func (s *Session) ExecScript(script string) []ScriptResult {
	statements := splitScript(script)
	results := make([]ScriptResult, 0, len(statements))
	for _, stmt := range statements {
		out, err := s.Exec(stmt)
		results = append(results, ScriptResult{Statement: stmt, Output: out, Err: err})
	}
	return results
}

// Traversal renders the values in the given order, memoized until the next mutation
func (s *Session) Traversal(order orderedset.Order) string {
	key := "traversal:" + order.String()
	if rendered, ok := GetRender(s.renders, key); ok {
		return rendered
	}
	rendered := formatValues(s.set.Values(order))
	CacheRender(s.renders, key, rendered)
	return rendered
}

// Tree renders the ASCII drawing of the set, memoized until the next mutation
func (s *Session) Tree() string {
	if rendered, ok := GetRender(s.renders, "tree"); ok {
		return rendered
	}
	var b strings.Builder
	if s.set.Print(&b) == 0 {
		b.WriteString(emptyMarker)
	}
	rendered := strings.TrimRight(b.String(), "\n")
	CacheRender(s.renders, "tree", rendered)
	return rendered
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func cmdInsert(s *Session, args []int) (string, error) {
	before := s.set.Len()
	for _, v := range args {
		s.set.Insert(v)
	}
	return fmt.Sprintf("inserted %d of %d values", s.set.Len()-before, len(args)), nil
}

func cmdRemove(s *Session, args []int) (string, error) {
	before := s.set.Len()
	for _, v := range args {
		s.set.Remove(v)
	}
	return fmt.Sprintf("removed %d of %d values", before-s.set.Len(), len(args)), nil
}

func cmdContains(s *Session, args []int) (string, error) {
	return strconv.FormatBool(s.set.Contains(args[0])), nil
}

func cmdMin(s *Session, _ []int) (string, error) {
	v, ok := s.set.Min()
	if !ok {
		return emptyMarker, nil
	}
	return strconv.Itoa(v), nil
}

func cmdMax(s *Session, _ []int) (string, error) {
	v, ok := s.set.Max()
	if !ok {
		return emptyMarker, nil
	}
	return strconv.Itoa(v), nil
}

func cmdTraversal(order orderedset.Order) commandFunc {
	return func(s *Session, _ []int) (string, error) {
		return s.Traversal(order), nil
	}
}

func cmdLen(s *Session, _ []int) (string, error) {
	return strconv.Itoa(s.set.Len()), nil
}

func cmdHeight(s *Session, _ []int) (string, error) {
	return strconv.Itoa(s.set.Height()), nil
}

func cmdClear(s *Session, _ []int) (string, error) {
	n := s.set.Len()
	s.set.Clear()
	return fmt.Sprintf("cleared %d values", n), nil
}

func cmdCheck(s *Session, _ []int) (string, error) {
	if err := s.set.Check(); err != nil {
		return "", fmt.Errorf("tree is inconsistent: %v", err)
	}
	return fmt.Sprintf("ok: %d values, height %d", s.set.Len(), s.set.Height()), nil
}

func cmdTree(s *Session, _ []int) (string, error) {
	return s.Tree(), nil
}

func cmdHelp(_ *Session, _ []int) (string, error) {
	return helpText(), nil
}
