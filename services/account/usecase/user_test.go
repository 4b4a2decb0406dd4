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
	"github.com/codeforher/backend/services/account/mocks"
)

func TestGetUserByID_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAccountUC(mocks.NewMockAccountRepo(ctrl), testConfig())

	_, err := uc.GetUserByID(context.Background(), "not-a-uuid")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestUpdateUser_EmptyPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAccountUC(mocks.NewMockAccountRepo(ctrl), testConfig())

	_, err := uc.UpdateUser(context.Background(), uuid.New().String(), &models.UserPatch{})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestUpdateUser_InvalidContactPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAccountUC(mocks.NewMockAccountRepo(ctrl), testConfig())

	contacts := models.EmergencyContacts{{Name: "Alice", Phone: "12345"}}
	_, err := uc.UpdateUser(context.Background(), uuid.New().String(), &models.UserPatch{
		EmergencyContacts: &contacts,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestDeleteUser_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(mockRepo, testConfig())

	userID := uuid.New().String()
	mockRepo.EXPECT().DeleteUser(gomock.Any(), userID).Return(nil)

	// Act
	err := uc.DeleteUser(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
}
