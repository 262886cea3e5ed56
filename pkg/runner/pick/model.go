package pick

import (
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

type hostKeys struct {
	Accept key.Binding
	Cancel key.Binding
}

func defaultHostKeys() hostKeys {
	return hostKeys{
		Accept: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "accept")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// HostBindings lists the keys handled around the picker.
func HostBindings() []key.Binding {
	k := defaultHostKeys()
	return []key.Binding{k.Accept, k.Cancel}
}

// model hosts the picker full screen until the user accepts or cancels.
type model struct {
	picker    *datepicker.Model
	keys      hostKeys
	cancelled bool
	changes   int
}

func newModel(p *datepicker.Model) *model {
	return &model{picker: p, keys: defaultHostKeys()}
}

func (m *model) Init() tea.Cmd {
	return m.picker.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// ctrl+c always exits, the other keys only while the grid has focus
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.picker.Editing() {
			switch {
			case key.Matches(msg, m.keys.Accept):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Cancel):
				m.cancelled = true
				return m, tea.Quit
			}
		}
	case datepicker.ChangedMsg:
		m.changes++
		return m, nil
	}
	_, cmd := m.picker.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	return m.picker.View()
}
