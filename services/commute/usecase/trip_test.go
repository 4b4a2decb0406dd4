package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/constants"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/commute/mocks"
)

func TestStartTrip_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommuteRepo(ctrl)
	mockGW := mocks.NewMockCommuteGW(ctrl)
	uc := NewCommuteUC(mockRepo, mockGW, &models.Config{})

	userID := uuid.New().String()
	var created *models.Trip
	mockRepo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) error {
			created = trip
			return nil
		})
	mockGW.EXPECT().
		PublishTripEvent(constants.SubjectTripStarted, gomock.Any()).
		Return(nil)

	req := &models.TripRequest{
		UserID:        userID,
		StartLocation: models.Location{Latitude: 12.9, Longitude: 77.6, Address: "MG Road"},
		EndLocation:   models.Location{Latitude: 12.97, Longitude: 77.59, Address: "Cubbon Park"},
	}

	// Act
	tripID, err := uc.StartTrip(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, tripID)
	assert.Equal(t, models.TripStatusOngoing, created.Status)
	assert.NotNil(t, created.Route)
	assert.NotNil(t, created.DetourAlerts)
}

func TestStartTrip_InvalidUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewCommuteUC(mocks.NewMockCommuteRepo(ctrl), mocks.NewMockCommuteGW(ctrl), &models.Config{})

	_, err := uc.StartTrip(context.Background(), &models.TripRequest{UserID: "bogus"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestEndTrip_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommuteRepo(ctrl)
	mockGW := mocks.NewMockCommuteGW(ctrl)
	uc := NewCommuteUC(mockRepo, mockGW, &models.Config{})

	tripID := uuid.New().String()
	mockRepo.EXPECT().
		GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil)
	mockRepo.EXPECT().
		UpdateTripStatus(gomock.Any(), tripID, models.TripStatusCompleted).
		Return(nil)
	mockGW.EXPECT().
		PublishTripEvent(constants.SubjectTripCompleted, gomock.Any()).
		Return(nil)

	// Act
	trip, err := uc.EndTrip(context.Background(), tripID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, trip.Status)
}

func TestEndTrip_AlreadyCompleted(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommuteRepo(ctrl)
	uc := NewCommuteUC(mockRepo, mocks.NewMockCommuteGW(ctrl), &models.Config{})

	tripID := uuid.New().String()
	mockRepo.EXPECT().
		GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusCompleted}, nil)

	// Act
	_, err := uc.EndTrip(context.Background(), tripID)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestCancelTrip_AlreadyCancelled(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommuteRepo(ctrl)
	uc := NewCommuteUC(mockRepo, mocks.NewMockCommuteGW(ctrl), &models.Config{})

	tripID := uuid.New().String()
	mockRepo.EXPECT().
		GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusCancelled}, nil)

	// Act
	_, err := uc.CancelTrip(context.Background(), tripID)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestCancelTrip_PublishFailureDoesNotFailRequest(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommuteRepo(ctrl)
	mockGW := mocks.NewMockCommuteGW(ctrl)
	uc := NewCommuteUC(mockRepo, mockGW, &models.Config{})

	tripID := uuid.New().String()
	mockRepo.EXPECT().
		GetTripByID(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil)
	mockRepo.EXPECT().
		UpdateTripStatus(gomock.Any(), tripID, models.TripStatusCancelled).
		Return(nil)
	mockGW.EXPECT().
		PublishTripEvent(constants.SubjectTripCancelled, gomock.Any()).
		Return(errors.New("nats unavailable"))

	// Act
	trip, err := uc.CancelTrip(context.Background(), tripID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, trip.Status)
}

func TestUpdateTrip_EmptyPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewCommuteUC(mocks.NewMockCommuteRepo(ctrl), mocks.NewMockCommuteGW(ctrl), &models.Config{})

	_, err := uc.UpdateTrip(context.Background(), uuid.New().String(), &models.TripPatch{})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestGetTrips_InvalidUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewCommuteUC(mocks.NewMockCommuteRepo(ctrl), mocks.NewMockCommuteGW(ctrl), &models.Config{})

	_, err := uc.GetTrips(context.Background(), "bogus")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}
