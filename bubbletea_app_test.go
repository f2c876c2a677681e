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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/ordset/orderedset"
)

func typeAndEnter(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.textInput.SetValue(input)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestModelRunsCommands(t *testing.T) {
	m := InitialModel(newTestSession(), defaultConfigCopy())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	m = typeAndEnter(t, m, "insert 3 1 2; contains 2")

	if m.textInput.Value() != "" {
		t.Errorf("input not cleared after enter: %q", m.textInput.Value())
	}
	if got := m.session.Set().InOrder(); len(got) != 3 {
		t.Errorf("set holds %v after insert; want 3 values", got)
	}
	logText := strings.Join(m.log, "\n")
	if !strings.Contains(logText, "inserted 3 of 3 values") || !strings.Contains(logText, "true") {
		t.Errorf("log = %q; want insert and contains output", logText)
	}
	if m.statusErr {
		t.Errorf("status reports an error: %q", m.status)
	}

	m = typeAndEnter(t, m, "insert nope")
	if !m.statusErr || !strings.Contains(m.status, "invalid integer") {
		t.Errorf("status = %q (err %v); want invalid integer error", m.status, m.statusErr)
	}

	if view := m.View(); !strings.Contains(view, "[1 2 3]") {
		t.Errorf("View() does not show the in-order contents")
	}
}

func TestModelCopiesSortedValues(t *testing.T) {
	var copied string
	original := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	defer func() { writeClipboard = original }()

	session := newTestSession()
	session.Exec("insert 9 -2 4")
	m := InitialModel(session, defaultConfigCopy())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = updated.(Model)

	if copied != "-2 4 9" {
		t.Errorf("copied %q; want \"-2 4 9\"", copied)
	}
	if m.statusErr || !strings.Contains(m.status, "3 values") {
		t.Errorf("status = %q; want copy confirmation", m.status)
	}
	if m.session.Traversal(orderedset.InOrder) != "[-2 4 9]" {
		t.Errorf("copy changed the set")
	}
}
