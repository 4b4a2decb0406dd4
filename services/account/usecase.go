package account

import (
	"context"

	"github.com/codeforher/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/codeforher/backend/services/account AccountUC

// AccountUC represents the account usecase interface
type AccountUC interface {
	// auth
	Signup(ctx context.Context, req *models.SignupRequest) (string, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)

	// user CRUD
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id string, patch *models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}
