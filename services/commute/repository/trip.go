package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/models"
)

// CommuteRepo implements the trip repository over PostgreSQL
type CommuteRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewCommuteRepo creates a new trip repository instance
func NewCommuteRepo(cfg *models.Config, db *sqlx.DB) *CommuteRepo {
	return &CommuteRepo{db: db, cfg: cfg}
}

const tripColumns = `id, user_id, start_location, end_location, route, distance,
	duration, status, detour_alerts, anomaly_alerts, created_at, updated_at`

// CreateTrip inserts a new trip record
func (r *CommuteRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (id, user_id, start_location, end_location, route,
			distance, duration, status, detour_alerts, anomaly_alerts,
			created_at, updated_at
		) VALUES (:id, :user_id, :start_location, :end_location, :route,
			:distance, :duration, :status, :detour_alerts, :anomaly_alerts,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, trip); err != nil {
		return fmt.Errorf("%w: failed to insert trip: %v", apperr.ErrPersistence, err)
	}
	return nil
}

// GetTripByID retrieves a trip by id
func (r *CommuteRepo) GetTripByID(ctx context.Context, tripID string) (*models.Trip, error) {
	query := fmt.Sprintf(`SELECT %s FROM trips WHERE id = $1`, tripColumns)

	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, query, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: Trip not found", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to get trip: %v", apperr.ErrPersistence, err)
	}
	return &trip, nil
}

// ListTrips retrieves trips for a user, or all trips when userID is empty
func (r *CommuteRepo) ListTrips(ctx context.Context, userID string) ([]*models.Trip, error) {
	trips := []*models.Trip{}

	if userID != "" {
		query := fmt.Sprintf(`SELECT %s FROM trips WHERE user_id = $1 ORDER BY created_at DESC`, tripColumns)
		if err := r.db.SelectContext(ctx, &trips, query, userID); err != nil {
			return nil, fmt.Errorf("%w: failed to list trips: %v", apperr.ErrPersistence, err)
		}
		return trips, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM trips ORDER BY created_at DESC`, tripColumns)
	if err := r.db.SelectContext(ctx, &trips, query); err != nil {
		return nil, fmt.Errorf("%w: failed to list trips: %v", apperr.ErrPersistence, err)
	}
	return trips, nil
}

// UpdateTripStatus sets a trip's status and stamps updated_at
func (r *CommuteRepo) UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trips SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), tripID)
	if err != nil {
		return fmt.Errorf("%w: failed to update trip status: %v", apperr.ErrPersistence, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read update result: %v", apperr.ErrPersistence, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: Trip not found", apperr.ErrNotFound)
	}
	return nil
}

// UpdateTrip applies a field-level merge of the patch and stamps updated_at
func (r *CommuteRepo) UpdateTrip(ctx context.Context, tripID string, patch *models.TripPatch) (*models.Trip, error) {
	set := []string{}
	args := map[string]interface{}{"id": tripID, "updated_at": time.Now().UTC()}

	if patch.Route != nil {
		set = append(set, "route = :route")
		args["route"] = *patch.Route
	}
	if patch.Distance != nil {
		set = append(set, "distance = :distance")
		args["distance"] = *patch.Distance
	}
	if patch.Duration != nil {
		set = append(set, "duration = :duration")
		args["duration"] = *patch.Duration
	}
	if patch.DetourAlerts != nil {
		set = append(set, "detour_alerts = :detour_alerts")
		args["detour_alerts"] = *patch.DetourAlerts
	}
	if patch.AnomalyAlerts != nil {
		set = append(set, "anomaly_alerts = :anomaly_alerts")
		args["anomaly_alerts"] = *patch.AnomalyAlerts
	}
	set = append(set, "updated_at = :updated_at")

	query := fmt.Sprintf(`UPDATE trips SET %s WHERE id = :id`, strings.Join(set, ", "))

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update trip: %v", apperr.ErrPersistence, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read update result: %v", apperr.ErrPersistence, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: Trip not found", apperr.ErrNotFound)
	}

	return r.GetTripByID(ctx, tripID)
}

// DeleteTrip removes a trip record permanently
func (r *CommuteRepo) DeleteTrip(ctx context.Context, tripID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, tripID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete trip: %v", apperr.ErrPersistence, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read delete result: %v", apperr.ErrPersistence, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: Trip not found", apperr.ErrNotFound)
	}
	return nil
}
