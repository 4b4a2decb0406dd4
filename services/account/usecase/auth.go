package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeforher/backend/internal/pkg/apperr"
	jwtpkg "github.com/codeforher/backend/internal/pkg/jwt"
	"github.com/codeforher/backend/internal/pkg/logger"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/internal/utils"
)

// Signup registers a new account and returns the generated user id
func (u *AccountUC) Signup(ctx context.Context, req *models.SignupRequest) (string, error) {
	if req.Name == "" {
		return "", fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}
	if req.Password == "" {
		return "", fmt.Errorf("%w: password is required", apperr.ErrValidation)
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	if err := utils.ValidatePhone(req.Phone); err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	for _, contact := range req.EmergencyContacts {
		if err := utils.ValidatePhone(contact.Phone); err != nil {
			return "", fmt.Errorf("%w: emergency contact %s: %v", apperr.ErrValidation, contact.Name, err)
		}
	}

	prefs := models.DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
		if prefs.SafeRadius <= 0 {
			return "", fmt.Errorf("%w: safe_radius must be positive", apperr.ErrValidation)
		}
	}

	if existing, err := u.accountRepo.GetUserByEmail(ctx, req.Email); err == nil && existing != nil {
		return "", fmt.Errorf("%w: account with email %s already exists", apperr.ErrConflict, req.Email)
	} else if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		HomeAddress:       req.HomeAddress,
		PasswordHash:      string(hash),
		EmergencyContacts: req.EmergencyContacts,
		Preferences:       prefs,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := u.accountRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	logger.Info("user registered",
		logger.String("user_id", user.ID),
		logger.Int("emergency_contacts", len(user.EmergencyContacts)))

	return user.ID, nil
}

// Login authenticates credentials and issues access and refresh tokens
func (u *AccountUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := u.accountRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthorized)
	}

	accessToken, expiresAt, err := jwtpkg.GenerateAccessToken(user.ID, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := jwtpkg.GenerateRefreshToken(user.ID, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshTTL := time.Duration(u.cfg.JWT.RefreshExpiryDays) * 24 * time.Hour
	if err := u.accountRepo.StoreRefreshToken(ctx, user.ID, refreshToken, refreshTTL); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (u *AccountUC) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	userID, err := jwtpkg.ValidateToken(refreshToken, u.cfg.JWT.Secret, jwtpkg.TokenTypeRefresh)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", apperr.ErrUnauthorized)
	}

	stored, err := u.accountRepo.GetRefreshToken(ctx, userID)
	if err != nil || stored != refreshToken {
		return nil, fmt.Errorf("%w: refresh token revoked or expired", apperr.ErrUnauthorized)
	}

	accessToken, expiresAt, err := jwtpkg.GenerateAccessToken(userID, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &models.AuthResponse{
		UserID:      userID,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}
