package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/fleetworks/timesheet-backend-go/internal/pkg/database"
)

type workEntryRepository struct {
	db *database.DB
}

func NewWorkEntryRepository(db *database.DB) timesheet.Repository {
	return &workEntryRepository{db: db}
}

// ListForYear implements timesheet.Repository.
func (r *workEntryRepository) ListForYear(ctx context.Context, equipmentID string, year int) ([]timesheet.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, equipment_id, date, work_type_id, hours, assignee_id, created_at, updated_at
		FROM equipment_work_entries
		WHERE equipment_id = $1
		  AND date >= make_date($2, 1, 1)
		  AND date < make_date($2 + 1, 1, 1)
		ORDER BY date, work_type_id
	`

	rows, err := q.Query(ctx, query, equipmentID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list work entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.WorkEntry
	for rows.Next() {
		var e timesheet.WorkEntry
		if err := rows.Scan(
			&e.ID, &e.EquipmentID, &e.Date, &e.WorkTypeID, &e.Hours, &e.AssigneeID,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work entries: %w", err)
	}

	return entries, nil
}

// ListWorkTypes implements timesheet.Repository. The supported set comes
// from the equipment's type, not the unit itself.
func (r *workEntryRepository) ListWorkTypes(ctx context.Context, equipmentID string) ([]timesheet.WorkType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT wt.id, wt.name
		FROM work_types wt
		JOIN equipment_type_work_types etwt ON etwt.work_type_id = wt.id
		JOIN equipments e ON e.equipment_type_id = etwt.equipment_type_id
		WHERE e.id = $1
		ORDER BY wt.name
	`

	rows, err := q.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work types: %w", err)
	}
	defer rows.Close()

	var workTypes []timesheet.WorkType
	for rows.Next() {
		var wt timesheet.WorkType
		if err := rows.Scan(&wt.ID, &wt.Name); err != nil {
			return nil, fmt.Errorf("failed to scan work type: %w", err)
		}
		workTypes = append(workTypes, wt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work types: %w", err)
	}

	return workTypes, nil
}

// WithinTransaction implements timesheet.Repository. Repository calls made
// through fn's context run on one transaction via GetQuerier.
func (r *workEntryRepository) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, r.db, fn)
}

// CreateEntry implements timesheet.Repository.
func (r *workEntryRepository) CreateEntry(ctx context.Context, entry timesheet.NewWorkEntry) (string, error) {
	q := GetQuerier(ctx, r.db)

	date, err := time.Parse("2006-01-02", entry.DateKey)
	if err != nil {
		return "", fmt.Errorf("invalid date key %q: %w", entry.DateKey, err)
	}

	query := `
		INSERT INTO equipment_work_entries (equipment_id, date, work_type_id, hours, assignee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id string
	err = q.QueryRow(ctx, query,
		entry.EquipmentID, date, entry.WorkTypeID, entry.Hours, entry.AssigneeID,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create work entry: %w", err)
	}

	return id, nil
}

// UpdateEntry implements timesheet.Repository. A record that no longer
// exists is reported as ErrEntryNotFound so the save engine can surface it
// as an operation failure instead of a silent no-op.
func (r *workEntryRepository) UpdateEntry(ctx context.Context, recordID string, hours float64, assigneeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE equipment_work_entries
		SET hours = $2, assignee_id = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, recordID, hours, assigneeID)
	if err != nil {
		return fmt.Errorf("failed to update work entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}

	return nil
}

// DeleteEntry implements timesheet.Repository. Deleting a missing record
// succeeds; the record being gone is the end state either way.
func (r *workEntryRepository) DeleteEntry(ctx context.Context, recordID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM equipment_work_entries WHERE id = $1`

	if _, err := q.Exec(ctx, query, recordID); err != nil {
		return fmt.Errorf("failed to delete work entry: %w", err)
	}

	return nil
}
