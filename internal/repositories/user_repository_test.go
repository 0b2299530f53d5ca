package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"fitness_club_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "first_name", "last_name", "email", "phone_number", "password_hash", "role", "gender", "birth_date", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	id := uuid.New()
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(id.String(), "Ivan", "Petrov", "ivan@example.com", "+1234567890", "hash", "client", "male", birth, now, now))

		user, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, models.RoleClient, user.Role)
		assert.Equal(t, models.GenderMale, user.Gender)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver failure", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, ErrDatabaseError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM users WHERE role = \$1`).
		WithArgs("trainer").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(uuid.NewString(), "Anna", "Smirnova", "anna@example.com", "+1234567891", "h", "trainer", "female", now, now, now).
			AddRow(uuid.NewString(), "Oleg", "Ivanov", "oleg@example.com", "+1234567892", "h", "trainer", "male", now, now, now))

	users, err := repo.FindByRole(context.Background(), models.RoleTrainer)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .* FROM users ORDER BY`).WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	user := &models.User{
		ID: uuid.New(), FirstName: "Ivan", LastName: "Petrov", Email: "ivan@example.com",
		PhoneNumber: "+1234567890", PasswordHash: "hash", Role: models.RoleClient, Gender: models.GenderMale,
		BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(user.ID, "Ivan", "Petrov", "ivan@example.com", "+1234567890", "hash", "client", "male",
				user.BirthDate, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(context.Background(), user))
		assert.False(t, user.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key", Constraint: "users_email_key"})

		err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Equal(t, "users_email_key", Constraint(err))
	})
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	user := &models.User{ID: uuid.New(), Role: models.RoleAdmin, Gender: models.GenderFemale}

	mock.ExpectExec(`UPDATE users SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), user))

	mock.ExpectExec(`UPDATE users SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), user), ErrNotFound)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(user.ID).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), user.ID))

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(user.ID).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), user.ID), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWrapWriteError_ForeignKey(t *testing.T) {
	err := wrapWriteError(&pq.Error{Code: "23503", Message: "violates foreign key", Constraint: "trainers_user_id_fkey"}, "creating trainer")
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
	assert.Equal(t, "trainers_user_id_fkey", Constraint(err))

	err = wrapWriteError(errors.New("boom"), "creating trainer")
	assert.ErrorIs(t, err, ErrDatabaseError)
	assert.Empty(t, Constraint(err))
}
