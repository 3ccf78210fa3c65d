package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmModal_Keys(t *testing.T) {
	type confirmed struct{}
	m := NewConfirmModal("Title", "Label", func() tea.Msg { return confirmed{} })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, confirmed{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	assert.Equal(t, confirmed{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, dismissModalMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	assert.Nil(t, cmd)
}

func TestConfirmModal_View(t *testing.T) {
	m := NewConfirmModal("Discard changes?", "Not saved.", nil).WithDetails("Edited: message")
	view := m.View()
	assert.Contains(t, view, "Discard changes?")
	assert.Contains(t, view, "Not saved.")
	assert.Contains(t, view, "Edited: message")
	assert.Contains(t, view, "y/Enter: confirm")
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Peek()
	assert.False(t, ok)
	_, ok = s.UpdateTop(tea.KeyMsg{})
	assert.False(t, ok)

	s.Push(Overlay{View: NewConfirmModal("a", "", nil), Dismiss: "esc"})
	s.Push(Overlay{View: NewConfirmModal("b", "", nil)})
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.False(t, top.IsDismissKey("esc"))

	s.Pop()
	top, _ = s.Peek()
	assert.True(t, top.IsDismissKey("esc"))
	assert.Equal(t, "a", top.View.(*ConfirmModal).Title)
}

func TestTemplateStep_Dirty(t *testing.T) {
	s, _, _ := newTestStep(t, TemplateStepProps{Subject: "S", Body: "a<br>b"})
	assert.False(t, s.Dirty(), "normalization on load is not an edit")

	s.SetBody("a\nbc")
	assert.True(t, s.Dirty())
	s.SetBody("a\nb")
	assert.False(t, s.Dirty())
}
