package repositories

import (
	"context"
	"fmt"
	"time"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db SQLExecutor
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db SQLExecutor) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, phone_number, password_hash, role, gender, birth_date, created_at, updated_at`

func scanUser(row scanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PhoneNumber,
		&user.PasswordHash, &user.Role, &user.Gender, &user.BirthDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) queryUsers(ctx context.Context, op, query string, args ...interface{}) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatabaseError, op, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating user rows: %v", ErrDatabaseError, err)
	}
	return users, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.queryUsers(ctx, "querying users",
		`SELECT `+userColumns+` FROM users ORDER BY last_name, first_name`)
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, "getting user by ID "+id.String())
	}
	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, wrapReadError(err, "getting user by email")
	}
	return user, nil
}

func (r *userRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE phone_number = $1`, phoneNumber))
	if err != nil {
		return nil, wrapReadError(err, "getting user by phone number")
	}
	return user, nil
}

func (r *userRepository) FindByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return r.queryUsers(ctx, "querying users by role",
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY last_name, first_name`, role)
}

// Create inserts a new user. CreatedAt and UpdatedAt are set to the current time when zero.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = user.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		user.ID, user.FirstName, user.LastName, user.Email, user.PhoneNumber,
		user.PasswordHash, user.Role, user.Gender, user.BirthDate, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return wrapWriteError(err, "creating user")
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET
		    first_name = $1, last_name = $2, email = $3, phone_number = $4, password_hash = $5,
		    role = $6, gender = $7, birth_date = $8, updated_at = $9
		  WHERE id = $10`,
		user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.PasswordHash,
		user.Role, user.Gender, user.BirthDate, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return wrapWriteError(err, "updating user ID "+user.ID.String())
	}
	return expectAffected(result, "updating user ID "+user.ID.String())
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, "deleting user ID "+id.String())
	}
	return expectAffected(result, "deleting user ID "+id.String())
}
