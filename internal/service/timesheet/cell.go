package timesheet

import (
	"math"
	"strconv"
	"strings"
)

// DayCeiling is the maximum total hours one equipment unit can log on a
// single calendar date, summed across every work-type column. The boundary
// itself is allowed.
const DayCeiling = 24.0

// Cell is one (date, work-type) work-hour entry of the matrix. Hours and
// AssigneeID are the current local values; OriginalHours/OriginalAssigneeID
// snapshot the last known server state and exist only for diffing.
type Cell struct {
	Hours      float64
	AssigneeID string

	// Persisted is true when the cell backs a record on the server; RecordID
	// is set exactly then.
	Persisted bool
	RecordID  string

	OriginalHours      float64
	OriginalAssigneeID string
}

func emptyCell(defaultAssigneeID string) *Cell {
	return &Cell{AssigneeID: defaultAssigneeID}
}

func persistedCell(recordID string, hours float64, assigneeID string) *Cell {
	return &Cell{
		Hours:              hours,
		AssigneeID:         assigneeID,
		Persisted:          true,
		RecordID:           recordID,
		OriginalHours:      hours,
		OriginalAssigneeID: assigneeID,
	}
}

// Dirty reports whether the cell's current value differs from the last known
// server value. A brand-new cell with hours is always dirty; an assignee
// change alone only counts on persisted cells, since an unsaved empty cell
// carries a default assignee that means nothing until hours are entered.
func (c *Cell) Dirty() bool {
	if c.Hours != c.OriginalHours {
		return true
	}
	return c.Persisted && c.AssigneeID != c.OriginalAssigneeID
}

// EffectiveHours is the figure the day-ceiling check sums: the in-memory
// value when the cell holds an unsaved edit, the authoritative server value
// otherwise.
func (c *Cell) EffectiveHours() float64 {
	if c.Dirty() {
		return c.Hours
	}
	return c.OriginalHours
}

// applyEdit commits a value to the cell. A nil assigneeID preserves the
// current assignee, except that a previously-empty cell with no assignee
// inherits the column default.
func (c *Cell) applyEdit(hours float64, assigneeID *string, defaultAssigneeID string) {
	wasEmpty := c.Hours == 0 && !c.Dirty()
	if assigneeID != nil {
		c.AssigneeID = *assigneeID
	} else if wasEmpty && c.AssigneeID == "" {
		c.AssigneeID = defaultAssigneeID
	}
	c.Hours = hours
}

// markSaved makes the current local values the authoritative snapshot after
// a successful create or update.
func (c *Cell) markSaved(recordID string) {
	c.Persisted = true
	c.RecordID = recordID
	c.OriginalHours = c.Hours
	c.OriginalAssigneeID = c.AssigneeID
}

// markDeleted resets the cell to an empty, unpersisted state after its
// backing record was removed.
func (c *Cell) markDeleted(defaultAssigneeID string) {
	*c = Cell{AssigneeID: defaultAssigneeID}
}

// ParseHours normalizes raw input-field text to an hour value. Blank or
// unparseable input means zero; fractional hours are fine.
func ParseHours(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
