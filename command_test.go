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
	"slices"
	"strings"
	"testing"
)

// TestSplitCommand verifies that splitCommand correctly tokenizes a command string.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"insert 5 3 8", []string{"insert", "5", "3", "8"}},
		{"  remove   -4  ", []string{"remove", "-4"}},
		{`contains "7"`, []string{"contains", "7"}},
		{"", nil},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if !slices.Equal(parts, tc.expected) {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
		}
	}

	if _, err := splitCommand(`insert "5`); err == nil {
		t.Errorf("splitCommand with an unterminated quote returned no error")
	}
}

func TestSplitScript(t *testing.T) {
	got := splitScript("insert 1 2;; remove 1\n in ;  ")
	want := []string{"insert 1 2", "remove 1", "in"}
	if !slices.Equal(got, want) {
		t.Errorf("splitScript() = %q; want %q", got, want)
	}
	if got := splitScript(" ; \n "); len(got) != 0 {
		t.Errorf("splitScript of blanks = %q; want none", got)
	}
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"insert", "insert"},
		{"ADD", "insert"},
		{"rm", "remove"},
		{"has", "contains"},
		{"sorted", "in"},
		{"?", "help"},
	}

	for _, tc := range tests {
		cmd, err := lookupCommand(tc.name)
		if err != nil {
			t.Errorf("lookupCommand(%q) returned error: %v", tc.name, err)
			continue
		}
		if cmd.Name != tc.expected {
			t.Errorf("lookupCommand(%q) = %s; want %s", tc.name, cmd.Name, tc.expected)
		}
	}

	if _, err := lookupCommand("explode"); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("lookupCommand(\"explode\") error = %v; want unknown command", err)
	}
}

func TestParseArgs(t *testing.T) {
	insert, _ := lookupCommand("insert")
	contains, _ := lookupCommand("contains")
	minCmd, _ := lookupCommand("min")

	if args, err := parseArgs(insert, []string{"1", "+2", "-3"}); err != nil || !slices.Equal(args, []int{1, 2, -3}) {
		t.Errorf("parseArgs(insert) = %v, %v; want [1 2 -3]", args, err)
	}
	if _, err := parseArgs(insert, nil); err == nil {
		t.Errorf("parseArgs(insert) with no values returned no error")
	}
	if _, err := parseArgs(contains, []string{"1", "2"}); err == nil {
		t.Errorf("parseArgs(contains) with two values returned no error")
	}
	if _, err := parseArgs(minCmd, []string{"1"}); err == nil {
		t.Errorf("parseArgs(min) with an argument returned no error")
	}
	if _, err := parseArgs(insert, []string{"1", "x"}); err == nil || !strings.Contains(err.Error(), "invalid integer") {
		t.Errorf("parseArgs(insert 1 x) error = %v; want invalid integer", err)
	}
}

func TestHelpTextListsEveryCommand(t *testing.T) {
	text := helpText()
	for _, cmd := range sessionCommands {
		if !strings.Contains(text, cmd.Usage) {
			t.Errorf("helpText() is missing %q", cmd.Usage)
		}
	}
}
