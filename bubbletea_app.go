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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/ordset/orderedset"
)

// maxLogEntries bounds the output log kept in memory
const maxLogEntries = 500

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput    textinput.Model
	logViewport  viewport.Model
	treeViewport viewport.Model

	// Data
	session *Session
	config  *Config

	// State
	log       []string
	status    string
	statusErr bool

	// Styling
	styles *Styles

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	Statement      lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the styles from the detected color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		Statement: lipgloss.NewStyle().
			Foreground(scheme.Primary),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// InitialModel creates the initial model
func InitialModel(session *Session, config *Config) Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "insert 5 3 8, remove 3, contains 8, help..."
	ti.Prompt = "> "
	ti.PromptStyle = styles.InputPrompt
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	logViewport := viewport.New(0, 0)
	treeViewport := viewport.New(0, 0)

	model := Model{
		textInput:    ti,
		logViewport:  logViewport,
		treeViewport: treeViewport,
		session:      session,
		config:       config,
		log:          []string{},
		styles:       styles,
	}
	model.refreshTree()
	model.refreshLog()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.runInput()
			return m, nil
		case "ctrl+y":
			m.copySorted()
			return m, nil
		case "ctrl+l":
			m.log = m.log[:0]
			m.refreshLog()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd
		case "up", "down":
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// runInput executes the typed statements and appends their output to the log
func (m *Model) runInput() {
	input := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")
	if input == "" {
		return
	}

	m.status, m.statusErr = "", false
	for _, result := range m.session.ExecScript(input) {
		m.appendLog(m.styles.Statement.Render("> " + result.Statement))
		if result.Err != nil {
			m.appendLog(m.styles.ErrorMessage.Render(result.Err.Error()))
			m.status, m.statusErr = result.Err.Error(), true
			continue
		}
		if result.Output != "" {
			m.appendLog(result.Output)
		}
	}

	m.refreshTree()
	m.refreshLog()
}

func (m *Model) appendLog(entry string) {
	m.log = append(m.log, entry)
	if len(m.log) > maxLogEntries {
		m.log = m.log[len(m.log)-maxLogEntries:]
	}
}

// copySorted copies the in-order contents to the clipboard
func (m *Model) copySorted() {
	text := strings.Trim(m.session.Traversal(orderedset.InOrder), "[]")
	if err := writeClipboard(text); err != nil {
		m.status, m.statusErr = fmt.Sprintf("clipboard: %v", err), true
		return
	}
	m.status, m.statusErr = fmt.Sprintf("📋 Copied %d values to clipboard", m.session.Set().Len()), false
}

func (m *Model) refreshLog() {
	if len(m.log) == 0 {
		m.logViewport.SetContent("Type a command and press enter. Try \"help\".")
		return
	}
	m.logViewport.SetContent(strings.Join(m.log, "\n"))
	m.logViewport.GotoBottom()
}

func (m *Model) refreshTree() {
	set := m.session.Set()

	var content strings.Builder
	fmt.Fprintf(&content, "values: %d   height: %d\n\n", set.Len(), set.Height())
	for _, order := range []orderedset.Order{orderedset.PreOrder, orderedset.InOrder, orderedset.PostOrder} {
		fmt.Fprintf(&content, "%-5s %s\n", order.String()+":", m.session.Traversal(order))
	}
	if m.config.Display.ShowTree {
		content.WriteString("\n")
		content.WriteString(m.session.Tree())
	}

	m.treeViewport.SetContent(content.String())
}

func (m *Model) updateLayout() {
	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 6

	m.logViewport.Width = leftWidth - 2
	m.logViewport.Height = max(logHeight-2, 1)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = max(inputHeight+logHeight, 1)
	m.refreshLog()
}

// View renders the session screen
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("⌨ Command"),
			m.textInput.View(),
		))

	logBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(logHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("📜 Output"),
			m.logViewport.View(),
		))

	treeBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(inputHeight + logHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("🌳 Tree"),
			m.treeViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, logBox),
		treeBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

func (m Model) renderHelp() string {
	keys := []string{"enter", "ctrl+y", "ctrl+l", "up/down", "pgup/pgdown", "esc"}
	descs := []string{"run", "copy sorted values", "clear output", "scroll output", "scroll tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session, config *Config) error {
	model := InitialModel(session, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
