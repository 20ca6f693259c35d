package timesheet

import (
	"sort"
	"time"

	domain "github.com/fleetworks/timesheet-backend-go/internal/domain/timesheet"
)

const dateKeyLayout = "2006-01-02"

// Matrix holds the dense year × work-type grid of cells for one equipment
// unit. It always spans the full calendar year, whatever window the view
// currently shows, so switching views never loses unsaved edits.
type Matrix struct {
	year             int
	workTypes        []domain.WorkType
	defaultAssignees map[string]string
	cells            map[string]map[string]*Cell // dateKey -> workTypeID -> cell
}

func NewMatrix() *Matrix {
	return &Matrix{
		defaultAssignees: make(map[string]string),
		cells:            make(map[string]map[string]*Cell),
	}
}

func (m *Matrix) Year() int { return m.year }

// WorkTypes returns the column domain in seed order.
func (m *Matrix) WorkTypes() []domain.WorkType {
	out := make([]domain.WorkType, len(m.workTypes))
	copy(out, m.workTypes)
	return out
}

// Seed rebuilds the dense domain for the given year and overlays one cell
// per input record. Cells holding unsaved edits that no record overwrites are
// carried over, so seeding merges into a populated store rather than wiping
// it; cells with a matching record take the authoritative values wholesale.
// Records referencing an unsupported work type are ignored.
func (m *Matrix) Seed(entries []domain.WorkEntry, workTypes []domain.WorkType, year int) {
	prev := m.cells

	m.year = year
	m.workTypes = m.workTypes[:0]
	supported := make(map[string]bool, len(workTypes))
	for _, wt := range workTypes {
		if supported[wt.ID] {
			continue
		}
		supported[wt.ID] = true
		m.workTypes = append(m.workTypes, wt)
	}

	m.cells = make(map[string]map[string]*Cell, 366)
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		key := d.Format(dateKeyLayout)
		row := make(map[string]*Cell, len(m.workTypes))
		for _, wt := range m.workTypes {
			if old, ok := prev[key][wt.ID]; ok && old.Dirty() {
				row[wt.ID] = old
			} else {
				row[wt.ID] = emptyCell(m.defaultAssignees[wt.ID])
			}
		}
		m.cells[key] = row
	}

	for _, e := range entries {
		if !supported[e.WorkTypeID] {
			continue
		}
		row, ok := m.cells[e.Date.Format(dateKeyLayout)]
		if !ok {
			continue
		}
		row[e.WorkTypeID] = persistedCell(e.ID, e.Hours, e.AssigneeID)
	}
}

// Get returns a copy of the cell at (dateKey, workTypeID), or the empty
// default if the key falls outside the seeded domain. It never fails.
func (m *Matrix) Get(dateKey, workTypeID string) Cell {
	if c, ok := m.cells[dateKey][workTypeID]; ok {
		return *c
	}
	return Cell{AssigneeID: m.defaultAssignees[workTypeID]}
}

// Edit commits (hours, assignee) to one cell after the day-ceiling check.
// On violation the matrix is left untouched and the violation is returned
// for user-facing display. The pair is applied atomically or not at all.
func (m *Matrix) Edit(dateKey, workTypeID string, hours float64, assigneeID *string) error {
	row, ok := m.cells[dateKey]
	if !ok {
		return domain.ErrDateOutsideYear
	}
	c, ok := row[workTypeID]
	if !ok {
		return domain.ErrWorkTypeNotSupported
	}

	if err := m.checkDayCeiling(dateKey, workTypeID, hours); err != nil {
		return err
	}

	c.applyEdit(hours, assigneeID, m.defaultAssignees[workTypeID])
	return nil
}

// checkDayCeiling sums the proposed value with every other column's
// effective hours for the date and rejects totals above DayCeiling.
// Exactly DayCeiling is allowed.
func (m *Matrix) checkDayCeiling(dateKey, editedWorkTypeID string, proposed float64) error {
	othersTotal := 0.0
	for wtID, c := range m.cells[dateKey] {
		if wtID == editedWorkTypeID {
			continue
		}
		othersTotal += c.EffectiveHours()
	}
	if othersTotal+proposed > DayCeiling {
		return &domain.CeilingViolationError{
			DateKey:      dateKey,
			CurrentTotal: othersTotal,
			Attempted:    proposed,
			Limit:        DayCeiling,
		}
	}
	return nil
}

// DayTotal is the date's current in-memory total across all columns.
func (m *Matrix) DayTotal(dateKey string) float64 {
	total := 0.0
	for _, c := range m.cells[dateKey] {
		total += c.Hours
	}
	return total
}

// AddWorkType extends the column domain with a fresh empty cell on every
// seeded date. Work types can be attached to an equipment type after the
// matrix is already populated. Adding an existing column is a no-op.
func (m *Matrix) AddWorkType(wt domain.WorkType, defaultAssigneeID string) {
	for _, existing := range m.workTypes {
		if existing.ID == wt.ID {
			return
		}
	}
	m.workTypes = append(m.workTypes, wt)
	m.defaultAssignees[wt.ID] = defaultAssigneeID
	for _, row := range m.cells {
		row[wt.ID] = emptyCell(defaultAssigneeID)
	}
}

// detachRecord severs a cell from its server record once the deletion
// ledger has taken responsibility for it. Re-entering hours in the slot
// then produces a fresh create, which the delete-first save order keeps
// from colliding with the doomed record.
func (m *Matrix) detachRecord(dateKey, workTypeID string) {
	if c, ok := m.cells[dateKey][workTypeID]; ok {
		c.Persisted = false
		c.RecordID = ""
		c.OriginalHours = 0
		c.OriginalAssigneeID = ""
	}
}

// SetDefaultAssignee records the assignee a column's fresh cells inherit.
func (m *Matrix) SetDefaultAssignee(workTypeID, assigneeID string) {
	m.defaultAssignees[workTypeID] = assigneeID
}

// dateKeys returns every seeded date in ascending order, for deterministic
// iteration over the full domain.
func (m *Matrix) dateKeys() []string {
	keys := make([]string, 0, len(m.cells))
	for k := range m.cells {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Matrix) workTypeIDs() []string {
	ids := make([]string, 0, len(m.workTypes))
	for _, wt := range m.workTypes {
		ids = append(ids, wt.ID)
	}
	return ids
}
