package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeforher/backend/internal/pkg/apperr"
	jwtpkg "github.com/codeforher/backend/internal/pkg/jwt"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/account/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "codeforher",
			ExpirationMinutes: 30,
			RefreshExpiryDays: 7,
		},
	}
}

func TestSignup_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(mockRepo, testConfig())

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "asha@example.com").
		Return(nil, apperr.ErrNotFound)

	var created *models.User
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			created = user
			return nil
		})

	req := &models.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+91-9900112233",
		Password: "s3cret",
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Alice", Phone: "+91-9900445566", Relationship: "sister"},
		},
	}

	// Act
	userID, err := uc.Signup(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, userID)
	assert.Equal(t, userID, created.ID)
	assert.NotEqual(t, "s3cret", created.PasswordHash)
	assert.True(t, created.Preferences.LocationSharing)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(mockRepo, testConfig())

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "asha@example.com").
		Return(&models.User{ID: uuid.New().String(), Email: "asha@example.com"}, nil)

	req := &models.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+91-9900112233",
		Password: "s3cret",
	}

	// Act
	_, err := uc.Signup(context.Background(), req)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestSignup_InvalidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAccountUC(mocks.NewMockAccountRepo(ctrl), testConfig())

	req := &models.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "9900112233",
		Password: "s3cret",
	}

	_, err := uc.Signup(context.Background(), req)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(mockRepo, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        "asha@example.com",
		PasswordHash: string(hash),
	}

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "asha@example.com").
		Return(user, nil)
	mockRepo.EXPECT().
		StoreRefreshToken(gomock.Any(), user.ID, gomock.Any(), 7*24*time.Hour).
		Return(nil)

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	subject, err := jwtpkg.ValidateToken(resp.AccessToken, "test-secret", jwtpkg.TokenTypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(mockRepo, testConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "asha@example.com").
		Return(&models.User{ID: uuid.New().String(), PasswordHash: string(hash)}, nil)

	// Act
	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	uc := NewAccountUC(mockRepo, testConfig())

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, apperr.ErrNotFound)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "s3cret",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestRefresh_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	cfg := testConfig()
	uc := NewAccountUC(mockRepo, cfg)

	userID := uuid.New().String()
	refreshToken, _, err := jwtpkg.GenerateRefreshToken(userID, cfg.JWT)
	assert.NoError(t, err)

	mockRepo.EXPECT().
		GetRefreshToken(gomock.Any(), userID).
		Return(refreshToken, nil)

	// Act
	resp, err := uc.Refresh(context.Background(), refreshToken)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefresh_RevokedToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	cfg := testConfig()
	uc := NewAccountUC(mockRepo, cfg)

	userID := uuid.New().String()
	refreshToken, _, err := jwtpkg.GenerateRefreshToken(userID, cfg.JWT)
	assert.NoError(t, err)

	mockRepo.EXPECT().
		GetRefreshToken(gomock.Any(), userID).
		Return("", apperr.ErrNotFound)

	// Act
	_, err = uc.Refresh(context.Background(), refreshToken)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	uc := NewAccountUC(mocks.NewMockAccountRepo(ctrl), cfg)

	accessToken, _, err := jwtpkg.GenerateAccessToken(uuid.New().String(), cfg.JWT)
	assert.NoError(t, err)

	// Act
	_, err = uc.Refresh(context.Background(), accessToken)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}
