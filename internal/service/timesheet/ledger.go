package timesheet

import (
	"sort"
)

// DeletionLedger is the append-only set of server record ids queued for
// deletion on the next save. It lives beside the matrix, not inside it: a
// cleared cell alone cannot tell "user wants 0 hours" apart from "user wants
// the record gone".
type DeletionLedger struct {
	ids map[string]struct{}
}

func NewDeletionLedger() *DeletionLedger {
	return &DeletionLedger{ids: make(map[string]struct{})}
}

// Mark queues a record id for deletion. Re-marking is a no-op, as is an
// empty id.
func (l *DeletionLedger) Mark(recordID string) {
	if recordID == "" {
		return
	}
	l.ids[recordID] = struct{}{}
}

func (l *DeletionLedger) Contains(recordID string) bool {
	_, ok := l.ids[recordID]
	return ok
}

func (l *DeletionLedger) Len() int {
	return len(l.ids)
}

func (l *DeletionLedger) Clear() {
	l.ids = make(map[string]struct{})
}

// Snapshot returns the marked ids in stable order.
func (l *DeletionLedger) Snapshot() []string {
	out := make([]string, 0, len(l.ids))
	for id := range l.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
