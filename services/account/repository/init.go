package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/codeforher/backend/internal/pkg/database"
	"github.com/codeforher/backend/internal/pkg/models"
)

// AccountRepo implements the account repository over PostgreSQL and Redis
type AccountRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewAccountRepo creates a new account repository instance
func NewAccountRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AccountRepo {
	return &AccountRepo{
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
	}
}
