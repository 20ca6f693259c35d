package timesheet

import (
	"time"

	domain "github.com/fleetworks/timesheet-backend-go/internal/domain/timesheet"
)

type ViewMode string

const (
	ViewWeek       ViewMode = "week"
	ViewFifteenDay ViewMode = "15day"
	ViewMonth      ViewMode = "month"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewWeek, ViewFifteenDay, ViewMonth:
		return ViewMode(s), nil
	}
	return "", domain.ErrUnknownViewMode
}

// Window is an inclusive date range derived from (mode, year, month,
// segment). It only ever filters the matrix for display; it never touches
// the stored cells. Week segments cover days 1-7, 8-14, 15-21, 22-28 and
// 29-end of the anchor month; 15-day segments cover days 1-15 and 16-end;
// month mode spans the whole calendar month and ignores the segment.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(mode ViewMode, year int, month time.Month, segment int) (Window, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	switch mode {
	case ViewMonth:
		return Window{Start: monthStart, End: monthEnd}, nil

	case ViewFifteenDay:
		switch segment {
		case 0:
			return Window{Start: monthStart, End: monthStart.AddDate(0, 0, 14)}, nil
		case 1:
			return Window{Start: monthStart.AddDate(0, 0, 15), End: monthEnd}, nil
		}
		return Window{}, domain.ErrWindowOutOfRange

	case ViewWeek:
		start := monthStart.AddDate(0, 0, segment*7)
		if segment < 0 || start.Month() != month {
			return Window{}, domain.ErrWindowOutOfRange
		}
		end := start.AddDate(0, 0, 6)
		if end.After(monthEnd) {
			end = monthEnd
		}
		return Window{Start: start, End: end}, nil
	}

	return Window{}, domain.ErrUnknownViewMode
}

func (w Window) Contains(dateKey string) bool {
	d, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End)
}

// DateKeys lists every date of the window in ascending order.
func (w Window) DateKeys() []string {
	var keys []string
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(dateKeyLayout))
	}
	return keys
}

func (w Window) StartKey() string { return w.Start.Format(dateKeyLayout) }
func (w Window) EndKey() string   { return w.End.Format(dateKeyLayout) }
