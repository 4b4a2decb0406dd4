package constants

// NATS subjects for domain events
const (
	SubjectSOSAlertCreated = "sos.alert.created"
	SubjectTripStarted     = "trip.started"
	SubjectTripCompleted   = "trip.completed"
	SubjectTripCancelled   = "trip.cancelled"
)
