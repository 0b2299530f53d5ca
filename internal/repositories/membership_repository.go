package repositories

import (
	"context"
	"fmt"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// MembershipRepository defines the interface for purchased membership persistence.
type MembershipRepository interface {
	FindAll(ctx context.Context) ([]models.Membership, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Membership, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Membership, error)
	Create(ctx context.Context, membership *models.Membership) error
	Update(ctx context.Context, membership *models.Membership) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ConsumeSession decrements the remaining sessions. ErrNotFound means none were left.
	ConsumeSession(ctx context.Context, id uuid.UUID) error
	RestoreSession(ctx context.Context, id uuid.UUID) error
}

type membershipRepository struct {
	db SQLExecutor
}

// NewMembershipRepository creates a new instance of MembershipRepository.
func NewMembershipRepository(db SQLExecutor) MembershipRepository {
	return &membershipRepository{db: db}
}

const membershipColumns = `id, user_id, membership_type_id, start_date, end_date, available_sessions`

func scanMembership(row scanner) (*models.Membership, error) {
	m := &models.Membership{}
	err := row.Scan(&m.ID, &m.UserID, &m.MembershipTypeID, &m.StartDate, &m.EndDate, &m.AvailableSessions)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *membershipRepository) queryMemberships(ctx context.Context, op, query string, args ...interface{}) ([]models.Membership, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatabaseError, op, err)
	}
	defer rows.Close()

	memberships := []models.Membership{}
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning membership: %v", ErrDatabaseError, err)
		}
		memberships = append(memberships, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating membership rows: %v", ErrDatabaseError, err)
	}
	return memberships, nil
}

func (r *membershipRepository) FindAll(ctx context.Context) ([]models.Membership, error) {
	return r.queryMemberships(ctx, "querying memberships",
		`SELECT `+membershipColumns+` FROM memberships ORDER BY start_date DESC`)
}

func (r *membershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Membership, error) {
	m, err := scanMembership(r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, "getting membership by ID "+id.String())
	}
	return m, nil
}

func (r *membershipRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Membership, error) {
	return r.queryMemberships(ctx, "querying memberships by user",
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = $1 ORDER BY start_date DESC`, userID)
}

func (r *membershipRepository) Create(ctx context.Context, m *models.Membership) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO memberships (`+membershipColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.UserID, m.MembershipTypeID, m.StartDate, m.EndDate, m.AvailableSessions)
	if err != nil {
		return wrapWriteError(err, "creating membership")
	}
	return nil
}

func (r *membershipRepository) Update(ctx context.Context, m *models.Membership) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET user_id = $1, membership_type_id = $2, start_date = $3, end_date = $4, available_sessions = $5
		  WHERE id = $6`,
		m.UserID, m.MembershipTypeID, m.StartDate, m.EndDate, m.AvailableSessions, m.ID)
	if err != nil {
		return wrapWriteError(err, "updating membership ID "+m.ID.String())
	}
	return expectAffected(result, "updating membership ID "+m.ID.String())
}

func (r *membershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, "deleting membership ID "+id.String())
	}
	return expectAffected(result, "deleting membership ID "+id.String())
}

func (r *membershipRepository) ConsumeSession(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET available_sessions = available_sessions - 1 WHERE id = $1 AND available_sessions > 0`, id)
	if err != nil {
		return wrapWriteError(err, "consuming session of membership ID "+id.String())
	}
	return expectAffected(result, "consuming session of membership ID "+id.String())
}

func (r *membershipRepository) RestoreSession(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET available_sessions = available_sessions + 1 WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, "restoring session of membership ID "+id.String())
	}
	return expectAffected(result, "restoring session of membership ID "+id.String())
}
