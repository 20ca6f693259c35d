package timesheet

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/fleetworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/google/uuid"
)

// Session is one editing session over one equipment unit's yearly matrix.
// It owns the matrix and the deletion ledger exclusively; all reads go
// through Get/Project, so the matrix contents can be fully replaced on
// re-seed without dangling references. While a save is in flight the
// session is read-only and mutating calls fail with ErrSaveInFlight.
type Session struct {
	ID          string
	EquipmentID string

	mu        sync.Mutex
	repo      domain.Repository
	matrix    *Matrix
	ledger    *DeletionLedger
	year      int
	saving    bool
	createdAt time.Time
}

func NewSession(repo domain.Repository, equipmentID string, year int) *Session {
	return &Session{
		ID:          uuid.NewString(),
		EquipmentID: equipmentID,
		repo:        repo,
		matrix:      NewMatrix(),
		ledger:      NewDeletionLedger(),
		year:        year,
		createdAt:   time.Now(),
	}
}

func (s *Session) Year() int {
	return s.year
}

func (s *Session) WorkTypes() []domain.WorkType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matrix.WorkTypes()
}

// Load seeds the matrix from a full-year fetch: supported work types first,
// then every record of the year.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return domain.ErrSaveInFlight
	}
	return s.load(ctx)
}

// load assumes s.mu is held. Both fetches run on one transaction so the
// work types and the year's entries are a consistent snapshot.
func (s *Session) load(ctx context.Context) error {
	return s.repo.WithinTransaction(ctx, func(ctx context.Context) error {
		workTypes, err := s.repo.ListWorkTypes(ctx, s.EquipmentID)
		if err != nil {
			return fmt.Errorf("failed to fetch work types: %w", err)
		}
		entries, err := s.repo.ListForYear(ctx, s.EquipmentID, s.year)
		if err != nil {
			return fmt.Errorf("failed to fetch work entries: %w", err)
		}
		s.matrix.Seed(entries, workTypes, s.year)
		return nil
	})
}

// Edit applies one invariant-gated cell edit.
func (s *Session) Edit(dateKey, workTypeID string, hours float64, assigneeID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return domain.ErrSaveInFlight
	}
	return s.matrix.Edit(dateKey, workTypeID, hours, assigneeID)
}

// ClearCell zeroes a cell and, when it backs a server record, queues that
// record in the deletion ledger.
func (s *Session) ClearCell(dateKey, workTypeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return domain.ErrSaveInFlight
	}
	cell := s.matrix.Get(dateKey, workTypeID)
	if err := s.matrix.Edit(dateKey, workTypeID, 0, nil); err != nil {
		return err
	}
	if cell.Persisted {
		s.ledger.Mark(cell.RecordID)
		s.matrix.detachRecord(dateKey, workTypeID)
	}
	return nil
}

// MarkForDeletion queues a record id explicitly. Idempotent.
func (s *Session) MarkForDeletion(recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return domain.ErrSaveInFlight
	}
	s.ledger.Mark(recordID)
	return nil
}

// AddWorkType attaches a new column with empty cells across the year.
func (s *Session) AddWorkType(wt domain.WorkType, defaultAssigneeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return domain.ErrSaveInFlight
	}
	s.matrix.AddWorkType(wt, defaultAssigneeID)
	return nil
}

func (s *Session) Get(dateKey, workTypeID string) Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matrix.Get(dateKey, workTypeID)
}

func (s *Session) DayTotal(dateKey string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matrix.DayTotal(dateKey)
}

func (s *Session) Project(w Window) Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Project(s.matrix, w)
}

// appliedOp pairs a succeeded operation with the id a create returned.
type appliedOp struct {
	op    domain.SaveOperation
	newID string
}

// Save diffs the full matrix plus the ledger, validates, then executes the
// batch strictly sequentially: every delete first, then every create/update,
// each awaited before the next. A failed operation is collected and the
// queue continues. With at least one success the matrix is re-seeded from a
// fresh fetch and the ledger keeps only the deletes that failed; if every
// operation failed nothing is cleared or refreshed so the user can retry.
func (s *Session) Save(ctx context.Context) (domain.SaveReport, error) {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return domain.SaveReport{}, domain.ErrSaveInFlight
	}

	plan := planSave(s.matrix, s.ledger)
	if plan.size() == 0 {
		s.mu.Unlock()
		return domain.SaveReport{}, domain.ErrNothingToSave
	}
	if err := validatePlan(plan); err != nil {
		s.mu.Unlock()
		return domain.SaveReport{}, err
	}

	s.saving = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	var (
		applied  []appliedOp
		failures []domain.OperationFailure
	)

	for _, op := range plan.deletes {
		if err := s.repo.DeleteEntry(ctx, op.RecordID); err != nil {
			failures = append(failures, domain.OperationFailure{Operation: op, Err: err})
			continue
		}
		applied = append(applied, appliedOp{op: op})
	}

	for _, op := range plan.upserts {
		switch op.Kind {
		case domain.OpCreate:
			id, err := s.repo.CreateEntry(ctx, domain.NewWorkEntry{
				EquipmentID: s.EquipmentID,
				DateKey:     op.DateKey,
				WorkTypeID:  op.WorkTypeID,
				Hours:       op.Hours,
				AssigneeID:  op.AssigneeID,
			})
			if err != nil {
				failures = append(failures, domain.OperationFailure{Operation: op, Err: err})
				continue
			}
			applied = append(applied, appliedOp{op: op, newID: id})
		case domain.OpUpdate:
			if err := s.repo.UpdateEntry(ctx, op.RecordID, op.Hours, op.AssigneeID); err != nil {
				failures = append(failures, domain.OperationFailure{Operation: op, Err: err})
				continue
			}
			applied = append(applied, appliedOp{op: op})
		}
	}

	report := domain.SaveReport{
		Attempted: plan.size(),
		Succeeded: len(applied),
		Failures:  failures,
	}

	if report.Succeeded == 0 {
		// Total failure: leave the matrix and ledger exactly as they were.
		return report, nil
	}

	s.mu.Lock()
	s.applyResults(applied)
	s.rebuildLedger(failures)
	err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return report, fmt.Errorf("failed to refresh after save: %w", err)
	}
	report.Refreshed = true
	return report, nil
}

// applyResults marks succeeded operations clean in the matrix, so the
// re-seed that follows does not resurrect them as unsaved edits. Assumes
// s.mu is held.
func (s *Session) applyResults(applied []appliedOp) {
	for _, a := range applied {
		if a.op.DateKey == "" {
			// Ledger-only delete with no backing cell.
			continue
		}
		c, ok := s.matrix.cells[a.op.DateKey][a.op.WorkTypeID]
		if !ok {
			continue
		}
		switch a.op.Kind {
		case domain.OpCreate:
			c.markSaved(a.newID)
		case domain.OpUpdate:
			c.markSaved(a.op.RecordID)
		case domain.OpDelete:
			c.markDeleted(s.matrix.defaultAssignees[a.op.WorkTypeID])
		}
	}
}

// rebuildLedger keeps only the record ids of deletes that failed, so a
// retry re-attempts exactly what is still pending. Assumes s.mu is held.
func (s *Session) rebuildLedger(failures []domain.OperationFailure) {
	s.ledger.Clear()
	for _, f := range failures {
		if f.Operation.Kind == domain.OpDelete {
			s.ledger.Mark(f.Operation.RecordID)
		}
	}
}
