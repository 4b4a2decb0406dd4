package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/sos"
	"github.com/codeforher/backend/services/sos/mocks"
)

func newTestUC(ctrl *gomock.Controller) (*SOSUC, *mocks.MockSOSRepo, *mocks.MockUserSource, *mocks.MockSMSGateway, *mocks.MockSOSGW) {
	mockRepo := mocks.NewMockSOSRepo(ctrl)
	mockUsers := mocks.NewMockUserSource(ctrl)
	mockSMS := mocks.NewMockSMSGateway(ctrl)
	mockGW := mocks.NewMockSOSGW(ctrl)
	uc := NewSOSUC(mockRepo, mockUsers, mockSMS, mockGW, &models.Config{})
	return uc, mockRepo, mockUsers, mockSMS, mockGW
}

func userWithContacts(contacts ...models.EmergencyContact) *models.User {
	return &models.User{
		ID:                uuid.New().String(),
		Name:              "Asha",
		EmergencyContacts: contacts,
	}
}

func TestSendAlert_BroadcastsToAllContacts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockUsers, mockSMS, mockGW := newTestUC(ctrl)

	user := userWithContacts(
		models.EmergencyContact{Name: "Alice", Phone: "+91-9900112233", Relationship: "sister"},
		models.EmergencyContact{Name: "Bob", Phone: "+91-9900445566", Relationship: "friend"},
		models.EmergencyContact{Name: "Carol", Phone: "+91-9900778899", Relationship: "mother"},
	)

	mockUsers.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockSMS.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	var persisted *models.SOSAlert
	mockRepo.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SOSAlert) error {
			persisted = alert
			return nil
		})
	mockGW.EXPECT().PublishAlertCreated(gomock.Any()).Return(nil)

	req := &models.SOSAlertRequest{
		UserID:   user.ID,
		Location: models.Location{Latitude: 12.9, Longitude: 77.6, Address: "MG Road"},
		Message:  "Help",
	}

	// Act
	resp, err := uc.SendAlert(context.Background(), req, "")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AlertID)
	assert.Len(t, persisted.ContactAlerts, 3)
	for _, ca := range persisted.ContactAlerts {
		assert.Equal(t, models.AlertStatusSent, ca.AlertStatus)
		assert.NotEqual(t, models.AlertStatusPending, ca.AlertStatus)
		assert.False(t, ca.AlertTime.IsZero())
	}
}

func TestSendAlert_OneFailureDoesNotBlockOthers(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockUsers, mockSMS, mockGW := newTestUC(ctrl)

	user := userWithContacts(
		models.EmergencyContact{Name: "Alice", Phone: "+91-9900112233", Relationship: "sister"},
		models.EmergencyContact{Name: "Bob", Phone: "+91-9900445566", Relationship: "friend"},
	)

	mockUsers.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockSMS.EXPECT().
		SendSMS(gomock.Any(), "+91-9900112233", gomock.Any()).
		Return(errors.New("carrier rejected"))
	mockSMS.EXPECT().
		SendSMS(gomock.Any(), "+91-9900445566", gomock.Any()).
		Return(nil)

	var persisted *models.SOSAlert
	mockRepo.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SOSAlert) error {
			persisted = alert
			return nil
		})
	mockGW.EXPECT().PublishAlertCreated(gomock.Any()).Return(nil)

	req := &models.SOSAlertRequest{
		UserID:   user.ID,
		Location: models.Location{Latitude: 12.9, Longitude: 77.6, Address: "MG Road"},
		Message:  "Help",
	}

	// Act
	resp, err := uc.SendAlert(context.Background(), req, "")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AlertID)
	assert.Len(t, persisted.ContactAlerts, 2)
	assert.Equal(t, "Alice", persisted.ContactAlerts[0].Name)
	assert.Equal(t, models.AlertStatusFailed, persisted.ContactAlerts[0].AlertStatus)
	assert.Equal(t, "Bob", persisted.ContactAlerts[1].Name)
	assert.Equal(t, models.AlertStatusSent, persisted.ContactAlerts[1].AlertStatus)
}

func TestSendAlert_NamedContactOnly(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockUsers, mockSMS, mockGW := newTestUC(ctrl)

	user := userWithContacts(
		models.EmergencyContact{Name: "Alice", Phone: "+91-9900112233", Relationship: "sister"},
		models.EmergencyContact{Name: "Bob", Phone: "+91-9900445566", Relationship: "friend"},
	)

	mockUsers.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockSMS.EXPECT().SendSMS(gomock.Any(), "+91-9900445566", gomock.Any()).Return(nil)

	var persisted *models.SOSAlert
	mockRepo.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SOSAlert) error {
			persisted = alert
			return nil
		})
	mockGW.EXPECT().PublishAlertCreated(gomock.Any()).Return(nil)

	req := &models.SOSAlertRequest{
		UserID:   user.ID,
		Location: models.Location{Latitude: 12.9, Longitude: 77.6, Address: "MG Road"},
		Message:  "Help",
	}

	// Act
	_, err := uc.SendAlert(context.Background(), req, "Bob")

	// Assert
	assert.NoError(t, err)
	assert.Len(t, persisted.ContactAlerts, 1)
	assert.Equal(t, "Bob", persisted.ContactAlerts[0].Name)
}

func TestSendAlert_NamedContactNotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockUsers, _, _ := newTestUC(ctrl)

	user := userWithContacts(
		models.EmergencyContact{Name: "Alice", Phone: "+91-9900112233", Relationship: "sister"},
	)

	mockUsers.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

	req := &models.SOSAlertRequest{
		UserID:   user.ID,
		Location: models.Location{Latitude: 12.9, Longitude: 77.6, Address: "MG Road"},
		Message:  "Help",
	}

	// Act
	_, err := uc.SendAlert(context.Background(), req, "Zoe")

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Contains(t, err.Error(), "Contact not found")
}

func TestSendAlert_NoContactsConfigured(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockUsers, _, _ := newTestUC(ctrl)

	user := userWithContacts()
	mockUsers.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

	req := &models.SOSAlertRequest{
		UserID:   user.ID,
		Location: models.Location{Latitude: 12.9, Longitude: 77.6, Address: "MG Road"},
		Message:  "Help",
	}

	// Act
	_, err := uc.SendAlert(context.Background(), req, "")

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestSendAlert_PersistenceFailureFailsRequest(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockUsers, mockSMS, _ := newTestUC(ctrl)

	user := userWithContacts(
		models.EmergencyContact{Name: "Alice", Phone: "+91-9900112233", Relationship: "sister"},
	)

	mockUsers.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockSMS.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		Return(apperr.ErrPersistence)

	req := &models.SOSAlertRequest{
		UserID:   user.ID,
		Location: models.Location{Latitude: 12.9, Longitude: 77.6, Address: "MG Road"},
		Message:  "Help",
	}

	// Act
	_, err := uc.SendAlert(context.Background(), req, "")

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrPersistence))
}

func TestSendAlert_InvalidUserID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	req := &models.SOSAlertRequest{
		UserID:   "not-a-uuid",
		Location: models.Location{Latitude: 12.9, Longitude: 77.6, Address: "MG Road"},
		Message:  "Help",
	}

	// Act
	_, err := uc.SendAlert(context.Background(), req, "")

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestGetAlerts_FiltersPassedToRepository(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)

	alertID := uuid.New().String()
	userID := uuid.New().String()

	mockRepo.EXPECT().
		ListAlerts(gomock.Any(), sos.AlertFilter{AlertID: alertID, UserID: userID}).
		Return([]*models.SOSAlert{{ID: alertID, UserID: userID}}, nil)

	// Act
	alerts, err := uc.GetAlerts(context.Background(), alertID, "", userID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, alertID, alerts[0].ID)
}

func TestGetAlerts_EmptyResultIsNotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)

	userID := uuid.New().String()
	mockRepo.EXPECT().
		ListAlerts(gomock.Any(), gomock.Any()).
		Return([]*models.SOSAlert{}, nil)

	// Act
	_, err := uc.GetAlerts(context.Background(), "", "", userID)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
