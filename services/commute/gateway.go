package commute

import "github.com/codeforher/backend/internal/pkg/models"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/codeforher/backend/services/commute CommuteGW

// CommuteGW publishes trip lifecycle events
type CommuteGW interface {
	PublishTripEvent(subject string, event *models.TripEvent) error
}
