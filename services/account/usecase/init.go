package usecase

import (
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/account"
)

// AccountUC implements the account usecase
type AccountUC struct {
	accountRepo account.AccountRepo
	cfg         *models.Config
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(accountRepo account.AccountRepo, cfg *models.Config) *AccountUC {
	return &AccountUC{
		accountRepo: accountRepo,
		cfg:         cfg,
	}
}
