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
	"sort"
	"strconv"
	"strings"

	"github.com/cybrota/ordset/orderedset"
	"github.com/mattn/go-shellwords"
)

// commandFunc runs one session command with already parsed integer arguments
type commandFunc func(s *Session, args []int) (string, error)

type sessionCommand struct {
	Name    string
	Aliases []string
	MinArgs int
	MaxArgs int // -1 means unlimited
	Usage   string
	Mutates bool
	Run     commandFunc
}

var sessionCommands = []sessionCommand{
	{Name: "insert", Aliases: []string{"add", "i"}, MinArgs: 1, MaxArgs: -1, Usage: "insert V... - add values (duplicates ignored)", Mutates: true, Run: cmdInsert},
	{Name: "remove", Aliases: []string{"rm", "delete", "del"}, MinArgs: 1, MaxArgs: -1, Usage: "remove V... - delete values (missing ones ignored)", Mutates: true, Run: cmdRemove},
	{Name: "contains", Aliases: []string{"has", "c"}, MinArgs: 1, MaxArgs: 1, Usage: "contains V - report membership", Run: cmdContains},
	{Name: "min", Usage: "min - smallest value", Run: cmdMin},
	{Name: "max", Usage: "max - largest value", Run: cmdMax},
	{Name: "pre", Aliases: []string{"preorder"}, Usage: "pre - pre-order traversal", Run: cmdTraversal(orderedset.PreOrder)},
	{Name: "in", Aliases: []string{"inorder", "sorted"}, Usage: "in - in-order (sorted) traversal", Run: cmdTraversal(orderedset.InOrder)},
	{Name: "post", Aliases: []string{"postorder"}, Usage: "post - post-order traversal", Run: cmdTraversal(orderedset.PostOrder)},
	{Name: "len", Aliases: []string{"size", "count"}, Usage: "len - number of values", Run: cmdLen},
	{Name: "height", Usage: "height - tree height", Run: cmdHeight},
	{Name: "clear", Usage: "clear - remove every value", Mutates: true, Run: cmdClear},
	{Name: "check", Usage: "check - verify ordering, balance and heights", Run: cmdCheck},
	{Name: "tree", Aliases: []string{"print"}, Usage: "tree - draw the tree", Run: cmdTree},
}

var commandIndex map[string]*sessionCommand

func init() {
	// help lists sessionCommands, so it is registered here to avoid an initialization cycle
	sessionCommands = append(sessionCommands, sessionCommand{
		Name: "help", Aliases: []string{"?"}, Usage: "help - list commands", Run: cmdHelp,
	})
	commandIndex = buildCommandIndex()
}

func buildCommandIndex() map[string]*sessionCommand {
	index := make(map[string]*sessionCommand)
	for i := range sessionCommands {
		cmd := &sessionCommands[i]
		index[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			index[alias] = cmd
		}
	}
	return index
}

// splitCommand splits a full command string into parts.
func splitCommand(fullCmd string) ([]string, error) {
	args, err := shellwords.Parse(fullCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", fullCmd, err)
	}
	return args, nil
}

// splitScript breaks a script into statements on ';' and newlines, dropping blanks
func splitScript(script string) []string {
	statements := strings.FieldsFunc(script, func(r rune) bool {
		return r == ';' || r == '\n'
	})
	out := statements[:0]
	for _, stmt := range statements {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// lookupCommand resolves a name or alias, case-insensitively
func lookupCommand(name string) (*sessionCommand, error) {
	cmd, ok := commandIndex[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown command %q (try \"help\")", name)
	}
	return cmd, nil
}

// parseArgs converts every argument before any command runs, so a bad token never
// leaves the set half-modified
func parseArgs(cmd *sessionCommand, raw []string) ([]int, error) {
	if len(raw) < cmd.MinArgs || (cmd.MaxArgs >= 0 && len(raw) > cmd.MaxArgs) {
		return nil, fmt.Errorf("usage: %s", cmd.Usage)
	}
	args := make([]int, 0, len(raw))
	for _, token := range raw {
		v, err := strconv.Atoi(strings.TrimPrefix(token, "+"))
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", cmd.Name, token)
		}
		args = append(args, v)
	}
	return args, nil
}

func helpText() string {
	lines := make([]string, 0, len(sessionCommands))
	for _, cmd := range sessionCommands {
		line := cmd.Usage
		if len(cmd.Aliases) > 0 {
			aliases := append([]string(nil), cmd.Aliases...)
			sort.Strings(aliases)
			line += fmt.Sprintf(" (aliases: %s)", strings.Join(aliases, ", "))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
