package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/datevalue"
	"tableflip.dev/datepick/pkg/locale"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

const maxEvents = 8

func newPickerCmd(opts *options) *cobra.Command {
	var localeFlag string

	cmd := &cobra.Command{
		Use:   "picker",
		Short: "Preview the date picker bound to host owned state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(*opts, locale.Parse(localeFlag))
		},
	}

	cmd.Flags().StringVar(&localeFlag, "locale", "en-US", "locale to render (e.g. \"de-DE\")")
	return cmd
}

func runPicker(opts options, l locale.Locale) error {
	model := newPickerModel(opts, l)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// pickerModel owns the value; the picker only sees it through a Func
// binding, the same way an embedding program would.
type pickerModel struct {
	opts   options
	value  *datevalue.Value
	picker *datepicker.Model
	events []string

	termWidth  int
	termHeight int
}

func newPickerModel(opts options, l locale.Locale) *pickerModel {
	m := &pickerModel{opts: opts}
	binding := picker.Func[*datevalue.Value]{
		GetFunc: func() *datevalue.Value { return m.value },
		SetFunc: func(v *datevalue.Value) {
			m.value = v
			m.record("host set " + describe(v))
		},
	}
	m.picker = datepicker.New(picker.New(binding, nil, picker.Options{Locale: l}))
	return m
}

func describe(v *datevalue.Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.Kind().String() + " " + v.String()
}

func (m *pickerModel) record(s string) {
	m.events = append(m.events, time.Now().Format("15:04:05")+" "+s)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func (m *pickerModel) Init() tea.Cmd { return m.picker.Init() }

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.picker.Editing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "n":
				// change the value behind the picker's back
				start := calendar.StartOfDay(time.Now())
				m.value = datevalue.Range(start, start.AddDate(0, 0, 7)).Ptr()
				m.record("external " + describe(m.value))
				return m, datepicker.SyncCmd()
			}
		}
	case datepicker.ChangedMsg:
		m.record("changed " + describe(msg.Value))
		return m, nil
	}
	_, cmd := m.picker.Update(msg)
	return m, cmd
}

func (m *pickerModel) View() string {
	side := lipgloss.NewStyle().
		Padding(0, 2).
		Width(40).
		Render(
			"Testbed: date picker\n\n" +
				"n sets next week from the host, q quits.\n\n" +
				fmt.Sprintf("value: %s\n\n", describe(m.value)) +
				strings.Join(m.events, "\n"),
		)
	content := lipgloss.JoinHorizontal(lipgloss.Top, m.picker.View(), side)

	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	if !m.opts.full {
		frame = frame.MaxWidth(m.opts.width).MaxHeight(m.opts.height)
	}
	return frame.Render(content)
}
