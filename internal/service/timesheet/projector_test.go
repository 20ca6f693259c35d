package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Totals(t *testing.T) {
	t.Parallel()

	m := newTestMatrix(
		entry("rec-1", "2025-06-02", wtDrilling.ID, 6, "D1"),
		entry("rec-2", "2025-06-02", wtTransport.ID, 2, "D2"),
		entry("rec-3", "2025-06-03", wtDrilling.ID, 8, "D1"),
		entry("rec-4", "2025-06-20", wtDrilling.ID, 5, "D1"),
	)

	w, err := NewWindow(ViewWeek, 2025, time.June, 0)
	require.NoError(t, err)
	p := Project(m, w)

	assert.Equal(t, 8.0, p.DayTotals["2025-06-02"])
	assert.Equal(t, 8.0, p.DayTotals["2025-06-03"])
	assert.Equal(t, 14.0, p.ColumnTotals[wtDrilling.ID], "June 20 is outside the window")
	assert.Equal(t, 2.0, p.ColumnTotals[wtTransport.ID])
	assert.Equal(t, 16.0, p.GrandTotal)
	assert.Len(t, p.Cells, 7)
}

func TestProject_TotalsIncludeUnsavedEdits(t *testing.T) {
	t.Parallel()

	m := newTestMatrix(entry("rec-1", "2025-06-02", wtDrilling.ID, 6, "D1"))
	require.NoError(t, m.Edit("2025-06-02", wtDrilling.ID, 1, nil))

	w, err := NewWindow(ViewWeek, 2025, time.June, 0)
	require.NoError(t, err)
	p := Project(m, w)

	assert.Equal(t, 1.0, p.DayTotals["2025-06-02"], "totals reflect what you see, not what is saved")
}

func TestProject_DoesNotMutateMatrix(t *testing.T) {
	t.Parallel()

	m := newTestMatrix(entry("rec-1", "2025-06-02", wtDrilling.ID, 6, "D1"))
	w, err := NewWindow(ViewMonth, 2025, time.June, 0)
	require.NoError(t, err)

	p := Project(m, w)
	cell := p.Cells["2025-06-02"][wtDrilling.ID]
	cell.Hours = 99

	assert.Equal(t, 6.0, m.Get("2025-06-02", wtDrilling.ID).Hours)
}

// Switching view windows must never lose unsaved work: an edit only visible
// in month view survives a round trip through a week view that excludes it.
func TestProject_WindowSwitchDurability(t *testing.T) {
	t.Parallel()

	m := newTestMatrix()
	require.NoError(t, m.Edit("2025-06-25", wtDrilling.ID, 3, strPtr("D1")))

	week, err := NewWindow(ViewWeek, 2025, time.June, 0)
	require.NoError(t, err)
	p := Project(m, week)
	assert.NotContains(t, p.Cells, "2025-06-25")

	month, err := NewWindow(ViewMonth, 2025, time.June, 0)
	require.NoError(t, err)
	p = Project(m, month)
	assert.Equal(t, 3.0, p.Cells["2025-06-25"][wtDrilling.ID].Hours)
}
