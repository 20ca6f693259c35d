package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, ParseHours(""))
	assert.Equal(t, 0.0, ParseHours("   "))
	assert.Equal(t, 0.0, ParseHours("abc"))
	assert.Equal(t, 0.0, ParseHours("NaN"))
	assert.Equal(t, 0.0, ParseHours("Inf"))
	assert.Equal(t, 8.0, ParseHours("8"))
	assert.Equal(t, 0.5, ParseHours("0.5"))
	assert.Equal(t, 7.25, ParseHours(" 7.25 "))
}

func TestCell_Dirty_NewCell(t *testing.T) {
	t.Parallel()

	c := emptyCell("OP-1")
	assert.False(t, c.Dirty())

	c.applyEdit(3, nil, "OP-1")
	assert.True(t, c.Dirty(), "a brand-new cell with hours is always dirty")

	c.applyEdit(0, nil, "OP-1")
	assert.False(t, c.Dirty(), "entering then clearing a new cell leaves nothing to save")
}

func TestCell_Dirty_AssigneeOnlyChange(t *testing.T) {
	t.Parallel()

	c := persistedCell("rec-1", 5, "D1")
	assert.False(t, c.Dirty())

	d2 := "D2"
	c.applyEdit(5, &d2, "")
	assert.True(t, c.Dirty(), "an assignee-only change on a persisted cell is dirty")
}

func TestCell_Dirty_AssigneeChangeOnEmptyUnpersistedCell(t *testing.T) {
	t.Parallel()

	c := emptyCell("OP-1")
	other := "OP-2"
	c.applyEdit(0, &other, "OP-1")
	assert.False(t, c.Dirty(), "assignee on an empty unsaved cell means nothing until hours are entered")
}

func TestCell_ApplyEdit_PreservesAssigneeWhenOmitted(t *testing.T) {
	t.Parallel()

	c := persistedCell("rec-1", 5, "D1")
	c.applyEdit(6, nil, "OP-DEFAULT")
	assert.Equal(t, "D1", c.AssigneeID)
	assert.Equal(t, 6.0, c.Hours)
}

func TestCell_ApplyEdit_EmptyCellInheritsDefault(t *testing.T) {
	t.Parallel()

	c := &Cell{} // no default assignee was known at creation
	c.applyEdit(2, nil, "OP-DEFAULT")
	assert.Equal(t, "OP-DEFAULT", c.AssigneeID)
}

func TestCell_EffectiveHours(t *testing.T) {
	t.Parallel()

	c := persistedCell("rec-1", 5, "D1")
	assert.Equal(t, 5.0, c.EffectiveHours(), "clean cell reports the authoritative figure")

	c.applyEdit(2, nil, "")
	assert.Equal(t, 2.0, c.EffectiveHours(), "dirty cell reports the in-memory figure")
}

func TestCell_MarkSaved(t *testing.T) {
	t.Parallel()

	c := emptyCell("OP-1")
	c.applyEdit(4, nil, "OP-1")
	assert.True(t, c.Dirty())

	c.markSaved("rec-9")
	assert.False(t, c.Dirty())
	assert.True(t, c.Persisted)
	assert.Equal(t, "rec-9", c.RecordID)
	assert.Equal(t, 4.0, c.OriginalHours)
}
