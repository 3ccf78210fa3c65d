package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusRing_Rotation(t *testing.T) {
	r := NewFocusRing("a", "b", "c")
	assert.Equal(t, FieldID("a"), r.Current)

	assert.Equal(t, FieldID("b"), r.Next())
	assert.Equal(t, FieldID("c"), r.Next())
	assert.Equal(t, FieldID("a"), r.Next(), "wraps forward")
	assert.Equal(t, FieldID("c"), r.Prev(), "wraps backward")
	assert.True(t, r.Is("c"))
}

func TestFocusRing_UnknownCurrent(t *testing.T) {
	r := &FocusRing{Order: []FieldID{"a", "b", "c"}, Current: "gone"}
	assert.Equal(t, FieldID("a"), r.Next())

	r.Current = "gone"
	assert.Equal(t, FieldID("c"), r.Prev())
}

func TestFocusRing_Empty(t *testing.T) {
	r := NewFocusRing()
	assert.Equal(t, FieldID(""), r.Next())
	assert.Equal(t, FieldID(""), r.Prev())
}
