package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// templateKeyMap holds the template step bindings. It implements help.KeyMap.
type templateKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Save      key.Binding
	Submit    key.Binding // enter; only acts on the Next button
	Quit      key.Binding
}

func newTemplateKeyMap() templateKeyMap {
	return templateKeyMap{
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save & next")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k templateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Save, k.Quit}
}

func (k templateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextField, k.PrevField}, {k.Submit, k.Save, k.Quit}}
}

// reviewKeyMap holds the review step bindings.
type reviewKeyMap struct {
	Back   key.Binding
	Finish key.Binding
}

func newReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Back:   key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "edit message")),
		Finish: key.NewBinding(key.WithKeys("enter", "q", "ctrl+c"), key.WithHelp("enter/q", "finish")),
	}
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Finish}
}

func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// RenderKeyHelp renders the one-line key help shown under a step.
func RenderKeyHelp(km help.KeyMap) string {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h.View(km)
}
