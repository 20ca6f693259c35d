package timesheet

import (
	domain "github.com/fleetworks/timesheet-backend-go/internal/domain/timesheet"
)

// cellIntent is what the diff decided a cell needs, derived purely from the
// cell and ledger state at diff time rather than call-site bookkeeping.
type cellIntent int

const (
	intentKeep cellIntent = iota
	intentCreate
	intentUpdate
	intentDelete
)

func intentOf(c *Cell) cellIntent {
	switch {
	case c.Hours > 0 && !c.Persisted:
		return intentCreate
	case c.Hours > 0 && c.Dirty():
		return intentUpdate
	case c.Persisted && c.Hours == 0 && c.OriginalHours > 0:
		// A persisted cell cleared back to zero is a deletion, whether or
		// not the caller remembered to mark the ledger.
		return intentDelete
	default:
		return intentKeep
	}
}

// savePlan is the ordered batch a save will execute: every delete strictly
// before every create/update, so a replacement entry for a slot cannot
// collide with the stale record it replaces.
type savePlan struct {
	deletes []domain.SaveOperation
	upserts []domain.SaveOperation
}

func (p savePlan) size() int {
	return len(p.deletes) + len(p.upserts)
}

func (p savePlan) operations() []domain.SaveOperation {
	ops := make([]domain.SaveOperation, 0, p.size())
	ops = append(ops, p.deletes...)
	ops = append(ops, p.upserts...)
	return ops
}

// planSave classifies the matrix's full domain, not just the visible window,
// then merges the ledger's explicit deletions, de-duplicated by record id.
func planSave(m *Matrix, ledger *DeletionLedger) savePlan {
	var plan savePlan
	queuedDeletes := make(map[string]bool)

	for _, dateKey := range m.dateKeys() {
		for _, wtID := range m.workTypeIDs() {
			c := m.cells[dateKey][wtID]
			switch intentOf(c) {
			case intentCreate:
				plan.upserts = append(plan.upserts, domain.SaveOperation{
					Kind:       domain.OpCreate,
					DateKey:    dateKey,
					WorkTypeID: wtID,
					Hours:      c.Hours,
					AssigneeID: c.AssigneeID,
				})
			case intentUpdate:
				plan.upserts = append(plan.upserts, domain.SaveOperation{
					Kind:       domain.OpUpdate,
					DateKey:    dateKey,
					WorkTypeID: wtID,
					RecordID:   c.RecordID,
					Hours:      c.Hours,
					AssigneeID: c.AssigneeID,
				})
			case intentDelete:
				if !queuedDeletes[c.RecordID] {
					queuedDeletes[c.RecordID] = true
					plan.deletes = append(plan.deletes, domain.SaveOperation{
						Kind:       domain.OpDelete,
						DateKey:    dateKey,
						WorkTypeID: wtID,
						RecordID:   c.RecordID,
					})
				}
			}
		}
	}

	for _, id := range ledger.Snapshot() {
		if !queuedDeletes[id] {
			queuedDeletes[id] = true
			plan.deletes = append(plan.deletes, domain.SaveOperation{
				Kind:     domain.OpDelete,
				RecordID: id,
			})
		}
	}

	return plan
}

// validatePlan is the pre-flight gate: every create/update must carry an
// assignee, and every offender is reported together so the user fixes the
// whole sheet in one pass.
func validatePlan(plan savePlan) error {
	var missing []domain.CellRef
	for _, op := range plan.upserts {
		if op.AssigneeID == "" {
			missing = append(missing, domain.CellRef{DateKey: op.DateKey, WorkTypeID: op.WorkTypeID})
		}
	}
	if len(missing) > 0 {
		return &domain.MissingAssigneesError{Cells: missing}
	}
	return nil
}
