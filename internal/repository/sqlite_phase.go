package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// phaseColumns is the canonical SELECT column list for phases.
const phaseColumns = `id, project_id, name,
		planned_start, planned_end, actual_start, actual_end, baseline_start, baseline_end,
		duration_days, baseline_duration_days, completion_pct, status, priority,
		is_critical_path, resource_id, effort_hours, color, created_at, updated_at`

// phaseOrder lists phases by project creation order, then by position
// within the project.
const phaseOrder = ` ORDER BY (SELECT created_at FROM projects WHERE projects.id = phases.project_id), project_id, seq`

// SQLitePhaseRepo implements PhaseRepo using a SQLite database.
type SQLitePhaseRepo struct {
	db db.DBTX
}

func NewSQLitePhaseRepo(conn db.DBTX) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{db: conn}
}

// Create inserts the phase at the end of its project's phase order.
func (r *SQLitePhaseRepo) Create(ctx context.Context, p *domain.Phase) error {
	query := `INSERT INTO phases (` + phaseColumns + `, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM phases WHERE project_id = ?))`
	args := append([]any{p.ID}, phaseFields(p)...)
	args = append(args, p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339), p.ProjectID)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting phase %q: %w", p.Name, err)
	}
	return nil
}

func (r *SQLitePhaseRepo) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+phaseColumns+` FROM phases WHERE id = ?`, id)
	return scanPhase(row)
}

func (r *SQLitePhaseRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error) {
	return r.ListByProjects(ctx, []string{projectID})
}

func (r *SQLitePhaseRepo) ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.Phase, error) {
	query := `SELECT ` + phaseColumns + ` FROM phases`
	var args []any
	if len(projectIDs) > 0 {
		var in string
		in, args = inClause(projectIDs)
		query += ` WHERE project_id IN ` + in
	}
	rows, err := r.db.QueryContext(ctx, query+phaseOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("listing phases: %w", err)
	}
	defer rows.Close()

	var phases []*domain.Phase
	for rows.Next() {
		p, err := scanPhase(rows)
		if err != nil {
			return nil, err
		}
		phases = append(phases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}
	return phases, nil
}

func (r *SQLitePhaseRepo) Update(ctx context.Context, p *domain.Phase) error {
	query := `UPDATE phases SET project_id = ?, name = ?,
		planned_start = ?, planned_end = ?, actual_start = ?, actual_end = ?,
		baseline_start = ?, baseline_end = ?,
		duration_days = ?, baseline_duration_days = ?, completion_pct = ?, status = ?, priority = ?,
		is_critical_path = ?, resource_id = ?, effort_hours = ?, color = ?, updated_at = ?
		WHERE id = ?`
	args := append(phaseFields(p), p.UpdatedAt.Format(time.RFC3339), p.ID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating phase: %w", err)
	}
	return requireAffected(res, "phase")
}

func (r *SQLitePhaseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	return requireAffected(res, "phase")
}

// phaseFields returns the values for phaseColumns between id and created_at.
func phaseFields(p *domain.Phase) []any {
	return []any{
		p.ProjectID,
		p.Name,
		nullableTimeToString(p.PlannedStart, dateLayout),
		nullableTimeToString(p.PlannedEnd, dateLayout),
		nullableTimeToString(p.ActualStart, dateLayout),
		nullableTimeToString(p.ActualEnd, dateLayout),
		nullableTimeToString(p.BaselineStart, dateLayout),
		nullableTimeToString(p.BaselineEnd, dateLayout),
		p.DurationDays,
		p.BaselineDurationDays,
		p.CompletionPct,
		string(p.Status),
		string(p.Priority),
		boolToInt(p.IsCriticalPath),
		nullableString(p.ResourceID),
		p.EffortHours,
		p.Color,
	}
}

func scanPhase(row rowScanner) (*domain.Phase, error) {
	var p domain.Phase
	var plannedStart, plannedEnd, actualStart, actualEnd, baselineStart, baselineEnd sql.NullString
	var status, priority, createdAt, updatedAt string
	var resourceID sql.NullString
	var critical int

	err := row.Scan(
		&p.ID, &p.ProjectID, &p.Name,
		&plannedStart, &plannedEnd, &actualStart, &actualEnd, &baselineStart, &baselineEnd,
		&p.DurationDays, &p.BaselineDurationDays, &p.CompletionPct, &status, &priority,
		&critical, &resourceID, &p.EffortHours, &p.Color, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("phase: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning phase: %w", err)
	}

	p.PlannedStart = parseNullableTime(plannedStart, dateLayout)
	p.PlannedEnd = parseNullableTime(plannedEnd, dateLayout)
	p.ActualStart = parseNullableTime(actualStart, dateLayout)
	p.ActualEnd = parseNullableTime(actualEnd, dateLayout)
	p.BaselineStart = parseNullableTime(baselineStart, dateLayout)
	p.BaselineEnd = parseNullableTime(baselineEnd, dateLayout)
	p.Status = domain.PhaseStatus(status)
	p.Priority = domain.Priority(priority)
	p.IsCriticalPath = intToBool(critical)
	p.ResourceID = stringPtr(resourceID)
	p.CreatedAt, p.UpdatedAt, err = parseTimestamps(createdAt, updatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
