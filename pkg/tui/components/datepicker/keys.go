package datepicker

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap lists the bindings understood by the picker.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Select    key.Binding
	RangeMode key.Binding
	Time      key.Binding
	Clear     key.Binding
	NextField key.Binding
	PrevField key.Binding
	Apply     key.Binding
	Back      key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Select:    key.NewBinding(key.WithKeys("enter", "space", " "), key.WithHelp("enter", "select")),
		RangeMode: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "range mode")),
		Time:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "include time")),
		Clear:     key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "clear")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply time")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to grid")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.PrevMonth, k.NextMonth, k.RangeMode, k.Time, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Today, k.Select},
		{k.RangeMode, k.Time, k.Clear},
		{k.NextField, k.PrevField, k.Apply, k.Back, k.Help},
	}
}

// Bindings returns every binding once, in display order.
func (k KeyMap) Bindings() []key.Binding {
	var out []key.Binding
	for _, col := range k.FullHelp() {
		out = append(out, col...)
	}
	return out
}
