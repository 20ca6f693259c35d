package timesheet

// Projection is the visible subset of a matrix plus its totals. Totals use
// each cell's current hours, dirty or not: the view reflects what you see,
// not what is saved.
type Projection struct {
	Window       Window
	Cells        map[string]map[string]Cell // dateKey -> workTypeID -> cell copy
	DayTotals    map[string]float64
	ColumnTotals map[string]float64
	GrandTotal   float64
}

// Project computes the window's cells and totals. Pure: the matrix is read
// through copies and never mutated, and out-of-window cells stay untouched
// in the store.
func Project(m *Matrix, w Window) Projection {
	p := Projection{
		Window:       w,
		Cells:        make(map[string]map[string]Cell),
		DayTotals:    make(map[string]float64),
		ColumnTotals: make(map[string]float64),
	}

	for _, dateKey := range w.DateKeys() {
		row, ok := m.cells[dateKey]
		if !ok {
			continue
		}
		out := make(map[string]Cell, len(row))
		dayTotal := 0.0
		for wtID, c := range row {
			out[wtID] = *c
			dayTotal += c.Hours
			p.ColumnTotals[wtID] += c.Hours
		}
		p.Cells[dateKey] = out
		p.DayTotals[dateKey] = dayTotal
		p.GrandTotal += dayTotal
	}

	return p
}
