package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/batch"
	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

// Styles
var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	cursorStyle  = focusedStyle.Copy()
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")) // Green
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
)

var kindDescriptions = map[payload.Kind]string{
	payload.KindNested:    "deep single-path nesting",
	payload.KindManyKeys:  "tens of thousands of keys",
	payload.KindLongKey:   "one oversized key",
	payload.KindHugeArray: "a very long array",
	payload.KindDunder:    "magic attribute names",
	payload.KindMalformed: "one targeted syntax break",
	payload.KindNaNInf:    "bare NaN and Infinity tokens",
	payload.KindDuplicate: "repeated keys",
	payload.KindMixed:     "several patterns combined",
}

type kindItem struct {
	kind     payload.Kind
	selected bool
}

type model struct {
	kinds      []kindItem
	cursor     int
	status     string
	outInput   textinput.Model
	editingOut bool
	quitting   bool
}

func initialModel() model {
	ti := textinput.New()
	ti.Placeholder = "payloads"
	ti.SetValue("payloads")
	ti.CharLimit = 128

	m := model{
		outInput: ti,
		status:   "Navigate: ↑/↓ | Space: Select | 'a': All | 'o': Out Dir | Enter: Generate",
	}
	for _, k := range payload.Kinds() {
		m.kinds = append(m.kinds, kindItem{kind: k})
	}
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editingOut {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "enter", "esc":
				m.editingOut = false
				m.outInput.Blur()
				return m, nil
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		m.outInput, cmd = m.outInput.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.kinds)-1 {
				m.cursor++
			}

		case " ":
			m.kinds[m.cursor].selected = !m.kinds[m.cursor].selected

		case "a":
			for i := range m.kinds {
				m.kinds[i].selected = true
			}

		case "o":
			m.editingOut = true
			return m, m.outInput.Focus()

		case "enter", "g":
			return m, m.generateSelected()
		}

	case statusMsg:
		m.status = string(msg)
		if strings.HasPrefix(m.status, "Wrote") {
			// Clear selections on success
			for i := range m.kinds {
				m.kinds[i].selected = false
			}
		}
	}

	return m, nil
}

type statusMsg string

// generateSelected writes one artifact per selected kind, with every
// parameter at its default, into the chosen directory.
func (m model) generateSelected() tea.Cmd {
	outDir := strings.TrimSpace(m.outInput.Value())
	var items []batch.Item
	for _, k := range m.kinds {
		if k.selected {
			req := payload.NewRequest(k.kind)
			items = append(items, batch.Item{Request: req, FileName: batch.FileName(req)})
		}
	}

	return func() tea.Msg {
		if len(items) == 0 {
			return statusMsg("No kinds selected!")
		}
		if outDir == "" {
			outDir = "payloads"
		}
		report, err := batch.New(outDir, items, nil).Run()
		if err != nil {
			return statusMsg(fmt.Sprintf("Error: %v", err))
		}
		if len(report.Skipped) > 0 {
			return statusMsg(fmt.Sprintf("Wrote %d payloads, skipped %d", len(report.Written), len(report.Skipped)))
		}
		return statusMsg(fmt.Sprintf("Wrote %d payloads to %s", len(report.Written), outDir))
	}
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	s := "Pick payload kinds to generate:\n\n"

	for i, item := range m.kinds {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
			s += cursorStyle.Render(cursor)
		} else {
			s += cursor
		}

		checked := " "
		if item.selected {
			checked = "x"
		}

		line := fmt.Sprintf("[%s] %-10s %s", checked, item.kind, kindDescriptions[item.kind])
		if item.selected {
			line = checkedStyle.Render(line)
		}

		s += " " + line + "\n"
	}

	s += "\nOutput directory: "
	if m.editingOut {
		s += m.outInput.View()
	} else {
		s += m.outInput.Value()
	}

	s += fmt.Sprintf("\n\n%s\n", m.status)
	return docStyle.Render(s)
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive terminal UI for generating payloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(initialModel())
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
