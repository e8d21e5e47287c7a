// Package tui provides Bubble Tea models for founder.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerWindow is the number of entries shown around the cursor.
const pickerWindow = 15

// PickerModel is a Bubble Tea model for selecting a path from history.
// The filter input stays focused the whole time; arrow keys move the
// cursor through the filtered entries.
type PickerModel struct {
	// Entries is the full list of history entries, newest first.
	Entries []string

	// Filtered is the list of entry indices matching the filter.
	Filtered []int

	// cursor is the current cursor position in the filtered list.
	cursor int

	// FilterInput is the text input for filtering.
	FilterInput textinput.Model

	// Quit indicates whether the user quit without selecting.
	Quit bool

	// Confirmed indicates whether the user confirmed a selection.
	Confirmed bool

	// styles
	titleStyle  lipgloss.Style
	cursorStyle lipgloss.Style
	normalStyle lipgloss.Style
	countStyle  lipgloss.Style
}

// NewPickerModel creates a new picker model over the given entries.
func NewPickerModel(entries []string) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Filter paths..."
	ti.Focus()

	filtered := make([]int, len(entries))
	for i := range entries {
		filtered[i] = i
	}

	return PickerModel{
		Entries:     entries,
		Filtered:    filtered,
		FilterInput: ti,
		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		normalStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		countStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit

		case "enter":
			if len(m.Filtered) > 0 {
				m.Confirmed = true
				return m, tea.Quit
			}
			return m, nil

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.Filtered)-1 {
				m.cursor++
			}
			return m, nil

		case "home":
			m.cursor = 0
			return m, nil

		case "end":
			m.cursor = len(m.Filtered) - 1
			return m, nil
		}
	}

	oldFilter := m.FilterInput.Value()
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	if newFilter := m.FilterInput.Value(); newFilter != oldFilter {
		m.applyFilter(newFilter)
	}

	return m, cmd
}

// applyFilter rebuilds the filtered index list for the given filter text.
// Matching is case-insensitive substring.
func (m *PickerModel) applyFilter(filter string) {
	filter = strings.ToLower(filter)

	m.Filtered = m.Filtered[:0]
	for i, entry := range m.Entries {
		if filter == "" || strings.Contains(strings.ToLower(entry), filter) {
			m.Filtered = append(m.Filtered, i)
		}
	}

	if m.cursor >= len(m.Filtered) {
		m.cursor = 0
	}
}

// Selection returns the confirmed entry, if any.
func (m PickerModel) Selection() (string, bool) {
	if !m.Confirmed || len(m.Filtered) == 0 {
		return "", false
	}
	return m.Entries[m.Filtered[m.cursor]], true
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if len(m.Entries) == 0 {
		return "\n  No entries in file history.\n"
	}

	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(m.titleStyle.Render("founder"))
	b.WriteString("\n\n  > ")
	b.WriteString(m.FilterInput.View())
	b.WriteString("\n\n  ")
	b.WriteString(m.countStyle.Render(
		fmt.Sprintf("%d/%d", len(m.Filtered), len(m.Entries)),
	))
	b.WriteString("\n\n")

	if len(m.Filtered) == 0 {
		b.WriteString("  (no matches)\n")
		return b.String()
	}

	start := m.cursor - pickerWindow/2
	if start < 0 {
		start = 0
	}
	end := start + pickerWindow
	if end > len(m.Filtered) {
		end = len(m.Filtered)
	}

	for i := start; i < end; i++ {
		entry := m.Entries[m.Filtered[i]]
		if i == m.cursor {
			b.WriteString("  " + m.cursorStyle.Render("> "+entry))
		} else {
			b.WriteString("    " + m.normalStyle.Render(entry))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(m.countStyle.Render("enter: select  esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

// Pick runs the picker and returns the selected entry.
// The second return value is false when the user canceled.
func Pick(entries []string) (string, bool, error) {
	model := NewPickerModel(entries)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", false, fmt.Errorf("failed to run picker: %w", err)
	}

	picker, ok := final.(PickerModel)
	if !ok {
		return "", false, fmt.Errorf("unexpected model type %T", final)
	}

	selection, ok := picker.Selection()
	return selection, ok, nil
}
