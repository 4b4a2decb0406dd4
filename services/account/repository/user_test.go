package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeforher/backend/internal/pkg/apperr"
	"github.com/codeforher/backend/internal/pkg/models"
)

func setupAccountRepoTest(t *testing.T) (*AccountRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AccountRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	return repo, mock, func() { mockDB.Close() }
}

func userRows(user *models.User) *sqlmock.Rows {
	contacts, _ := user.EmergencyContacts.Value()
	prefs, _ := user.Preferences.Value()
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "home_address", "password_hash",
		"emergency_contacts", "preferences", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Name, user.Email, user.Phone, user.HomeAddress,
		user.PasswordHash, contacts, prefs, user.CreatedAt, user.UpdatedAt,
	)
}

func TestGetUserByID(t *testing.T) {
	now := time.Now().UTC()
	testUser := &models.User{
		ID:          "550e8400-e29b-41d4-a716-446655440001",
		Name:        "Asha",
		Email:       "asha@example.com",
		Phone:       "+91-9900112233",
		HomeAddress: "12 MG Road",
		EmergencyContacts: models.EmergencyContacts{
			{Name: "Alice", Phone: "+91-9900445566", Relationship: "sister"},
		},
		Preferences: models.DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	testCases := []struct {
		name       string
		userID     string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:   "Success",
			userID: testUser.ID,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
					WithArgs(testUser.ID).
					WillReturnRows(userRows(testUser))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, testUser.ID, user.ID)
				assert.Equal(t, "Asha", user.Name)
				assert.Len(t, user.EmergencyContacts, 1)
				assert.Equal(t, "Alice", user.EmergencyContacts[0].Name)
			},
		},
		{
			name:   "User Not Found",
			userID: "550e8400-e29b-41d4-a716-446655440002",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
					WithArgs("550e8400-e29b-41d4-a716-446655440002").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.True(t, errors.Is(err, apperr.ErrNotFound))
				assert.Contains(t, err.Error(), "User not found")
			},
		},
		{
			name:   "Database Error",
			userID: "550e8400-e29b-41d4-a716-446655440003",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
					WithArgs("550e8400-e29b-41d4-a716-446655440003").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.True(t, errors.Is(err, apperr.ErrPersistence))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo, mock, cleanup := setupAccountRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			// Execute
			user, err := repo.GetUserByID(context.Background(), tc.userID)

			// Assert
			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()
	user := &models.User{
		ID:                "550e8400-e29b-41d4-a716-446655440001",
		Name:              "Asha",
		Email:             "asha@example.com",
		Phone:             "+91-9900112233",
		PasswordHash:      "$2a$10$hash",
		EmergencyContacts: models.EmergencyContacts{},
		Preferences:       models.DefaultPreferences(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DatabaseError(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("unique violation"))

	err := repo.CreateUser(context.Background(), &models.User{ID: "x"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrPersistence))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM users").
					WithArgs("550e8400-e29b-41d4-a716-446655440001").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "User Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM users").
					WithArgs("550e8400-e29b-41d4-a716-446655440001").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apperr.ErrNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAccountRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.DeleteUser(context.Background(), "550e8400-e29b-41d4-a716-446655440001")

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateUser_PatchedFieldsOnly(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	userID := "550e8400-e29b-41d4-a716-446655440001"
	name := "Asha K"

	mock.ExpectExec("UPDATE users SET name = (.+), updated_at =").
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now().UTC()
	updated := &models.User{
		ID:          userID,
		Name:        name,
		Preferences: models.DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(userRows(updated))

	user, err := repo.UpdateUser(context.Background(), userID, &models.UserPatch{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, name, user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
