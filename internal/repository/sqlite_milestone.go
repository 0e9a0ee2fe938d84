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

const milestoneColumns = `id, project_id, name, target_date, actual_date, type, is_critical,
		completion_pct, color, created_at, updated_at`

// SQLiteMilestoneRepo implements MilestoneRepo using a SQLite database.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(conn db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (` + milestoneColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ProjectID,
		m.Name,
		nullableTimeToString(m.TargetDate, dateLayout),
		nullableTimeToString(m.ActualDate, dateLayout),
		string(m.Type),
		boolToInt(m.IsCritical),
		m.CompletionPct,
		m.Color,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting milestone %q: %w", m.Name, err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+milestoneColumns+` FROM milestones WHERE id = ?`, id)
	return scanMilestone(row)
}

// ListByProjects returns milestones ordered by target date, undated last.
// An empty projectIDs lists every milestone.
func (r *SQLiteMilestoneRepo) ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones`
	var args []any
	if len(projectIDs) > 0 {
		var in string
		in, args = inClause(projectIDs)
		query += ` WHERE project_id IN ` + in
	}
	query += ` ORDER BY target_date IS NULL, target_date, name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var out []*domain.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return out, nil
}

func (r *SQLiteMilestoneRepo) Update(ctx context.Context, m *domain.Milestone) error {
	query := `UPDATE milestones SET name = ?, target_date = ?, actual_date = ?, type = ?,
		is_critical = ?, completion_pct = ?, color = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Name,
		nullableTimeToString(m.TargetDate, dateLayout),
		nullableTimeToString(m.ActualDate, dateLayout),
		string(m.Type),
		boolToInt(m.IsCritical),
		m.CompletionPct,
		m.Color,
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	return requireAffected(res, "milestone")
}

func (r *SQLiteMilestoneRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}
	return requireAffected(res, "milestone")
}

func scanMilestone(row rowScanner) (*domain.Milestone, error) {
	var m domain.Milestone
	var target, actual sql.NullString
	var typ, createdAt, updatedAt string
	var critical int

	err := row.Scan(&m.ID, &m.ProjectID, &m.Name, &target, &actual, &typ, &critical,
		&m.CompletionPct, &m.Color, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("milestone: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}

	m.TargetDate = parseNullableTime(target, dateLayout)
	m.ActualDate = parseNullableTime(actual, dateLayout)
	m.Type = domain.MilestoneType(typ)
	m.IsCritical = intToBool(critical)
	m.CreatedAt, m.UpdatedAt, err = parseTimestamps(createdAt, updatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
