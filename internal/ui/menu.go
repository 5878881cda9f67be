package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	menuTitleStyle      = lipgloss.NewStyle().MarginLeft(2)
	menuPaginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	menuHelpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// LabelItem is one selectable run label (or a special entry such as ALL).
type LabelItem struct {
	Name, Desc string
}

func (i LabelItem) Title() string       { return i.Name }
func (i LabelItem) Description() string { return i.Desc }
func (i LabelItem) FilterValue() string { return i.Name }

// LabelMenu is a bubbletea model for picking a run label. After the
// program finishes, Selected holds the chosen label name, or Quitting is
// set when the operator backed out.
type LabelMenu struct {
	list     list.Model
	Selected string
	Quitting bool
}

func NewLabelMenu(title string, items []LabelItem) LabelMenu {
	lItems := make([]list.Item, len(items))
	for i, item := range items {
		lItems[i] = item
	}

	const defaultWidth = 40
	const listHeight = 14

	l := list.New(lItems, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = menuTitleStyle
	l.Styles.PaginationStyle = menuPaginationStyle
	l.Styles.HelpStyle = menuHelpStyle

	return LabelMenu{list: l}
}

func (m LabelMenu) Init() tea.Cmd {
	return nil
}

func (m LabelMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(LabelItem); ok {
				m.Selected = i.Name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m LabelMenu) View() string {
	if m.Selected != "" || m.Quitting {
		return ""
	}
	return "\n" + m.list.View()
}
