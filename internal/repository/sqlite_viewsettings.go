package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// SQLiteViewSettingsRepo stores the saved view in the single 'default' row.
type SQLiteViewSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteViewSettingsRepo(conn db.DBTX) *SQLiteViewSettingsRepo {
	return &SQLiteViewSettingsRepo{db: conn}
}

// Get returns ErrNotFound until settings have been saved once.
func (r *SQLiteViewSettingsRepo) Get(ctx context.Context) (*domain.ViewSettings, error) {
	query := `SELECT zoom, show_critical, show_baselines, show_progress, show_milestones,
		show_dependencies, group_by, status_filter, resource_filter
		FROM view_settings WHERE id = 'default'`

	var s domain.ViewSettings
	var zoom, groupBy, statusFilter, resourceFilter string
	var critical, baselines, progress, milestones, deps int
	err := r.db.QueryRowContext(ctx, query).Scan(
		&zoom, &critical, &baselines, &progress, &milestones, &deps,
		&groupBy, &statusFilter, &resourceFilter,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("view settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning view settings: %w", err)
	}

	s.Zoom = domain.ZoomLevel(zoom)
	s.ShowCriticalPath = intToBool(critical)
	s.ShowBaselines = intToBool(baselines)
	s.ShowProgress = intToBool(progress)
	s.ShowMilestones = intToBool(milestones)
	s.ShowDependencies = intToBool(deps)
	s.GroupBy = domain.GroupMode(groupBy)
	s.StatusFilter = splitList(statusFilter)
	s.ResourceFilter = splitList(resourceFilter)
	return &s, nil
}

func (r *SQLiteViewSettingsRepo) Upsert(ctx context.Context, s domain.ViewSettings) error {
	query := `INSERT OR REPLACE INTO view_settings (id, zoom, show_critical, show_baselines,
		show_progress, show_milestones, show_dependencies, group_by, status_filter, resource_filter)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(s.Zoom),
		boolToInt(s.ShowCriticalPath),
		boolToInt(s.ShowBaselines),
		boolToInt(s.ShowProgress),
		boolToInt(s.ShowMilestones),
		boolToInt(s.ShowDependencies),
		string(s.GroupBy),
		joinList(s.StatusFilter),
		joinList(s.ResourceFilter),
	)
	if err != nil {
		return fmt.Errorf("upserting view settings: %w", err)
	}
	return nil
}
