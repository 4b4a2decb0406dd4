package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/logger"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/sos"
)

// SOSUC implements the SOS alert usecase
type SOSUC struct {
	alertRepo  sos.SOSRepo
	userSource sos.UserSource
	smsGateway sos.SMSGateway
	sosGW      sos.SOSGW
	cfg        *models.Config
}

// NewSOSUC creates a new SOS usecase instance
func NewSOSUC(
	alertRepo sos.SOSRepo,
	userSource sos.UserSource,
	smsGateway sos.SMSGateway,
	sosGW sos.SOSGW,
	cfg *models.Config,
) *SOSUC {
	return &SOSUC{
		alertRepo:  alertRepo,
		userSource: userSource,
		smsGateway: smsGateway,
		sosGW:      sosGW,
		cfg:        cfg,
	}
}

// SendAlert resolves the contacts to notify, composes the alert text,
// attempts one delivery per contact, and persists the broadcast record.
// A delivery failure for one contact never blocks attempts to the rest;
// a persistence failure is fatal to the request.
func (u *SOSUC) SendAlert(ctx context.Context, req *models.SOSAlertRequest, contactName string) (*models.SOSAlertResponse, error) {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return nil, fmt.Errorf("%w: invalid user id %q", apperr.ErrValidation, req.UserID)
	}
	if req.TripID != nil {
		if _, err := uuid.Parse(*req.TripID); err != nil {
			return nil, fmt.Errorf("%w: invalid trip id %q", apperr.ErrValidation, *req.TripID)
		}
	}

	contacts, err := u.resolveContacts(ctx, req.UserID, contactName)
	if err != nil {
		return nil, err
	}

	message := ComposeAlertMessage(req.Message, req.Location)
	contactAlerts := u.fanOut(ctx, message, contacts)

	now := time.Now().UTC()
	alert := &models.SOSAlert{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		TripID:        req.TripID,
		Location:      req.Location,
		Message:       message,
		ContactAlerts: contactAlerts,
		VoiceClipURL:  req.VoiceClipURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.alertRepo.CreateAlert(ctx, alert); err != nil {
		// Messages may already be out; losing the record is a server error.
		return nil, err
	}

	u.publishAlertCreated(alert)

	return &models.SOSAlertResponse{AlertID: alert.ID}, nil
}

// resolveContacts returns the contacts to notify: all of the user's
// emergency contacts in stored order, or the single exact-name match.
func (u *SOSUC) resolveContacts(ctx context.Context, userID, contactName string) ([]models.EmergencyContact, error) {
	user, err := u.userSource.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if contactName == "" {
		if len(user.EmergencyContacts) == 0 {
			return nil, fmt.Errorf("%w: user has no emergency contacts", apperr.ErrValidation)
		}
		return user.EmergencyContacts, nil
	}

	for _, contact := range user.EmergencyContacts {
		if contact.Name == contactName {
			return []models.EmergencyContact{contact}, nil
		}
	}
	return nil, fmt.Errorf("%w: Contact not found", apperr.ErrNotFound)
}

// fanOut attempts exactly one delivery per contact and records each outcome.
// Every status in the returned slice is terminal: SENT or FAILED.
func (u *SOSUC) fanOut(ctx context.Context, message string, contacts []models.EmergencyContact) models.ContactAlerts {
	contactAlerts := make(models.ContactAlerts, 0, len(contacts))

	for _, contact := range contacts {
		contactAlert := models.EmergencyContactAlert{
			Name:         contact.Name,
			Phone:        contact.Phone,
			Relationship: contact.Relationship,
			AlertStatus:  models.AlertStatusPending,
		}

		err := u.smsGateway.SendSMS(ctx, contact.Phone, message)
		contactAlert.AlertTime = time.Now().UTC()
		if err != nil {
			contactAlert.AlertStatus = models.AlertStatusFailed
			logger.Warn("failed to send alert",
				logger.String("contact", contact.Name),
				logger.String("phone", contact.Phone),
				logger.Err(err))
		} else {
			contactAlert.AlertStatus = models.AlertStatusSent
			logger.Info("alert sent",
				logger.String("contact", contact.Name),
				logger.String("phone", contact.Phone))
		}

		contactAlerts = append(contactAlerts, contactAlert)
	}

	return contactAlerts
}

// GetAlerts returns alerts matching the given filters
func (u *SOSUC) GetAlerts(ctx context.Context, alertID, tripID, userID string) ([]*models.SOSAlert, error) {
	for name, id := range map[string]string{"alert": alertID, "trip": tripID, "user": userID} {
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%w: invalid %s id %q", apperr.ErrValidation, name, id)
		}
	}

	alerts, err := u.alertRepo.ListAlerts(ctx, sos.AlertFilter{
		AlertID: alertID,
		TripID:  tripID,
		UserID:  userID,
	})
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return nil, fmt.Errorf("%w: No alerts found", apperr.ErrNotFound)
	}
	return alerts, nil
}

// publishAlertCreated emits the alert event. Best effort, never fails the
// broadcast.
func (u *SOSUC) publishAlertCreated(alert *models.SOSAlert) {
	sent, failed := 0, 0
	for _, ca := range alert.ContactAlerts {
		if ca.AlertStatus == models.AlertStatusSent {
			sent++
		} else {
			failed++
		}
	}

	event := &models.SOSAlertEvent{
		AlertID:   alert.ID,
		UserID:    alert.UserID,
		TripID:    alert.TripID,
		Location:  alert.Location,
		Contacts:  len(alert.ContactAlerts),
		Sent:      sent,
		Failed:    failed,
		CreatedAt: alert.CreatedAt,
	}
	if err := u.sosGW.PublishAlertCreated(event); err != nil {
		logger.Warn("failed to publish alert event",
			logger.String("alert_id", alert.ID),
			logger.Err(err))
	}
}
