package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/internal/utils"
)

// GetUserByID retrieves a single user
func (u *AccountUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid user id %q", apperr.ErrValidation, id)
	}
	return u.accountRepo.GetUserByID(ctx, id)
}

// ListUsers retrieves all users
func (u *AccountUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	return u.accountRepo.ListUsers(ctx)
}

// UpdateUser merges an explicit patch into an existing user record
func (u *AccountUC) UpdateUser(ctx context.Context, id string, patch *models.UserPatch) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid user id %q", apperr.ErrValidation, id)
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no updatable fields in request", apperr.ErrValidation)
	}
	if patch.Phone != nil {
		if err := utils.ValidatePhone(*patch.Phone); err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrValidation, err)
		}
	}
	if patch.EmergencyContacts != nil {
		for _, contact := range *patch.EmergencyContacts {
			if err := utils.ValidatePhone(contact.Phone); err != nil {
				return nil, fmt.Errorf("%w: emergency contact %s: %v", apperr.ErrValidation, contact.Name, err)
			}
		}
	}
	if patch.Preferences != nil && patch.Preferences.SafeRadius <= 0 {
		return nil, fmt.Errorf("%w: safe_radius must be positive", apperr.ErrValidation)
	}

	return u.accountRepo.UpdateUser(ctx, id, patch)
}

// DeleteUser removes a user record
func (u *AccountUC) DeleteUser(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid user id %q", apperr.ErrValidation, id)
	}
	return u.accountRepo.DeleteUser(ctx, id)
}
