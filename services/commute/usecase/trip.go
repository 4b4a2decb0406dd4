package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/constants"
	"github.com/codeforher/backend/internal/pkg/logger"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/commute"
)

// CommuteUC implements the trip usecase
type CommuteUC struct {
	tripRepo  commute.CommuteRepo
	commuteGW commute.CommuteGW
	cfg       *models.Config
}

// NewCommuteUC creates a new commute usecase instance
func NewCommuteUC(tripRepo commute.CommuteRepo, commuteGW commute.CommuteGW, cfg *models.Config) *CommuteUC {
	return &CommuteUC{
		tripRepo:  tripRepo,
		commuteGW: commuteGW,
		cfg:       cfg,
	}
}

// StartTrip creates a new ONGOING trip and returns the generated trip id
func (u *CommuteUC) StartTrip(ctx context.Context, req *models.TripRequest) (string, error) {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return "", fmt.Errorf("%w: invalid user id %q", apperr.ErrValidation, req.UserID)
	}

	now := time.Now().UTC()
	trip := &models.Trip{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Route:         req.Route,
		Distance:      req.Distance,
		Duration:      req.Duration,
		Status:        models.TripStatusOngoing,
		DetourAlerts:  models.DetourAlerts{},
		AnomalyAlerts: models.AnomalyAlerts{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if trip.Route == nil {
		trip.Route = models.RoutePoints{}
	}

	if err := u.tripRepo.CreateTrip(ctx, trip); err != nil {
		return "", err
	}

	u.publishEvent(constants.SubjectTripStarted, trip)
	return trip.ID, nil
}

// EndTrip moves an ONGOING trip to COMPLETED
func (u *CommuteUC) EndTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return u.transition(ctx, tripID, models.TripStatusCompleted, constants.SubjectTripCompleted)
}

// CancelTrip moves an ONGOING trip to CANCELLED
func (u *CommuteUC) CancelTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return u.transition(ctx, tripID, models.TripStatusCancelled, constants.SubjectTripCancelled)
}

// transition applies a terminal status. COMPLETED and CANCELLED are mutually
// exclusive and final: a trip that already reached either rejects further
// end/cancel operations.
func (u *CommuteUC) transition(ctx context.Context, tripID string, status models.TripStatus, subject string) (*models.Trip, error) {
	if _, err := uuid.Parse(tripID); err != nil {
		return nil, fmt.Errorf("%w: invalid trip id %q", apperr.ErrValidation, tripID)
	}

	trip, err := u.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: trip %s is already %s", apperr.ErrConflict, tripID, trip.Status)
	}

	if err := u.tripRepo.UpdateTripStatus(ctx, tripID, status); err != nil {
		return nil, err
	}
	trip.Status = status
	trip.UpdatedAt = time.Now().UTC()

	u.publishEvent(subject, trip)
	return trip, nil
}

// GetTripByID retrieves a single trip
func (u *CommuteUC) GetTripByID(ctx context.Context, tripID string) (*models.Trip, error) {
	if _, err := uuid.Parse(tripID); err != nil {
		return nil, fmt.Errorf("%w: invalid trip id %q", apperr.ErrValidation, tripID)
	}
	return u.tripRepo.GetTripByID(ctx, tripID)
}

// GetTrips retrieves trips for a user, or all trips when userID is empty
func (u *CommuteUC) GetTrips(ctx context.Context, userID string) ([]*models.Trip, error) {
	if userID != "" {
		if _, err := uuid.Parse(userID); err != nil {
			return nil, fmt.Errorf("%w: invalid user id %q", apperr.ErrValidation, userID)
		}
	}
	return u.tripRepo.ListTrips(ctx, userID)
}

// UpdateTrip merges an explicit patch into an existing trip record
func (u *CommuteUC) UpdateTrip(ctx context.Context, tripID string, patch *models.TripPatch) (*models.Trip, error) {
	if _, err := uuid.Parse(tripID); err != nil {
		return nil, fmt.Errorf("%w: invalid trip id %q", apperr.ErrValidation, tripID)
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no updatable fields in request", apperr.ErrValidation)
	}
	return u.tripRepo.UpdateTrip(ctx, tripID, patch)
}

// DeleteTrip removes a trip record
func (u *CommuteUC) DeleteTrip(ctx context.Context, tripID string) error {
	if _, err := uuid.Parse(tripID); err != nil {
		return fmt.Errorf("%w: invalid trip id %q", apperr.ErrValidation, tripID)
	}
	return u.tripRepo.DeleteTrip(ctx, tripID)
}

// publishEvent emits a trip lifecycle event. Publishing is best effort and
// never fails the request.
func (u *CommuteUC) publishEvent(subject string, trip *models.Trip) {
	event := &models.TripEvent{
		TripID:    trip.ID,
		UserID:    trip.UserID,
		Status:    trip.Status,
		Timestamp: time.Now().UTC(),
	}
	if err := u.commuteGW.PublishTripEvent(subject, event); err != nil {
		logger.Warn("failed to publish trip event",
			logger.String("subject", subject),
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
}
