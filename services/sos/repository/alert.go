package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/sos"
)

// SOSRepo implements the alert repository over PostgreSQL
type SOSRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewSOSRepo creates a new alert repository instance
func NewSOSRepo(cfg *models.Config, db *sqlx.DB) *SOSRepo {
	return &SOSRepo{db: db, cfg: cfg}
}

const alertColumns = `id, user_id, trip_id, location, message, contact_alerts,
	voice_clip_url, created_at, updated_at`

// CreateAlert inserts a broadcast record. The contact list is a snapshot;
// it is never updated after creation.
func (r *SOSRepo) CreateAlert(ctx context.Context, alert *models.SOSAlert) error {
	query := `
		INSERT INTO sos_alerts (id, user_id, trip_id, location, message,
			contact_alerts, voice_clip_url, created_at, updated_at
		) VALUES (:id, :user_id, :trip_id, :location, :message,
			:contact_alerts, :voice_clip_url, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, alert); err != nil {
		return fmt.Errorf("%w: failed to insert alert: %v", apperr.ErrPersistence, err)
	}
	return nil
}

// ListAlerts retrieves alerts matching the filter, newest first
func (r *SOSRepo) ListAlerts(ctx context.Context, filter sos.AlertFilter) ([]*models.SOSAlert, error) {
	where := []string{}
	args := []interface{}{}

	if filter.AlertID != "" {
		args = append(args, filter.AlertID)
		where = append(where, fmt.Sprintf("id = $%d", len(args)))
	}
	if filter.TripID != "" {
		args = append(args, filter.TripID)
		where = append(where, fmt.Sprintf("trip_id = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM sos_alerts`, alertColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	alerts := []*models.SOSAlert{}
	if err := r.db.SelectContext(ctx, &alerts, query, args...); err != nil {
		return nil, fmt.Errorf("%w: failed to list alerts: %v", apperr.ErrPersistence, err)
	}
	return alerts, nil
}
