package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/models"
)

const userColumns = `id, name, email, phone, home_address, password_hash,
	emergency_contacts, preferences, created_at, updated_at`

// CreateUser inserts a new user record
func (r *AccountRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, home_address, password_hash,
			emergency_contacts, preferences, created_at, updated_at
		) VALUES (:id, :name, :email, :phone, :home_address, :password_hash,
			:emergency_contacts, :preferences, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("%w: failed to insert user: %v", apperr.ErrPersistence, err)
	}
	return nil
}

// GetUserByID retrieves a user by id
func (r *AccountRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: User not found", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to get user: %v", apperr.ErrPersistence, err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *AccountRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: User not found", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to get user: %v", apperr.ErrPersistence, err)
	}
	return &user, nil
}

// ListUsers retrieves all users in creation order
func (r *AccountRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at`, userColumns)

	users := []*models.User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("%w: failed to list users: %v", apperr.ErrPersistence, err)
	}
	return users, nil
}

// UpdateUser applies a field-level merge of the patch and stamps updated_at.
// Only the fields enumerated on UserPatch can ever reach the database.
func (r *AccountRepo) UpdateUser(ctx context.Context, id string, patch *models.UserPatch) (*models.User, error) {
	set := []string{}
	args := map[string]interface{}{"id": id, "updated_at": time.Now().UTC()}

	if patch.Name != nil {
		set = append(set, "name = :name")
		args["name"] = *patch.Name
	}
	if patch.Phone != nil {
		set = append(set, "phone = :phone")
		args["phone"] = *patch.Phone
	}
	if patch.HomeAddress != nil {
		set = append(set, "home_address = :home_address")
		args["home_address"] = *patch.HomeAddress
	}
	if patch.EmergencyContacts != nil {
		set = append(set, "emergency_contacts = :emergency_contacts")
		args["emergency_contacts"] = *patch.EmergencyContacts
	}
	if patch.Preferences != nil {
		set = append(set, "preferences = :preferences")
		args["preferences"] = *patch.Preferences
	}
	set = append(set, "updated_at = :updated_at")

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = :id`, strings.Join(set, ", "))

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update user: %v", apperr.ErrPersistence, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read update result: %v", apperr.ErrPersistence, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: User not found", apperr.ErrNotFound)
	}

	return r.GetUserByID(ctx, id)
}

// DeleteUser removes a user record permanently
func (r *AccountRepo) DeleteUser(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete user: %v", apperr.ErrPersistence, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read delete result: %v", apperr.ErrPersistence, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: User not found", apperr.ErrNotFound)
	}
	return nil
}
