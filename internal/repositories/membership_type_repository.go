package repositories

import (
	"context"
	"fmt"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// MembershipTypeRepository defines the interface for membership plan persistence.
type MembershipTypeRepository interface {
	FindAll(ctx context.Context) ([]models.MembershipType, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.MembershipType, error)
	FindByName(ctx context.Context, name string) (*models.MembershipType, error)
	Create(ctx context.Context, membershipType *models.MembershipType) error
	Update(ctx context.Context, membershipType *models.MembershipType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type membershipTypeRepository struct {
	db SQLExecutor
}

// NewMembershipTypeRepository creates a new instance of MembershipTypeRepository.
func NewMembershipTypeRepository(db SQLExecutor) MembershipTypeRepository {
	return &membershipTypeRepository{db: db}
}

func scanMembershipType(row scanner) (*models.MembershipType, error) {
	mt := &models.MembershipType{}
	if err := row.Scan(&mt.ID, &mt.Name, &mt.Price, &mt.Days, &mt.Sessions); err != nil {
		return nil, err
	}
	return mt, nil
}

func (r *membershipTypeRepository) FindAll(ctx context.Context) ([]models.MembershipType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price, days, sessions FROM membership_types ORDER BY price`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying membership types: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	types := []models.MembershipType{}
	for rows.Next() {
		mt, err := scanMembershipType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning membership type: %v", ErrDatabaseError, err)
		}
		types = append(types, *mt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating membership type rows: %v", ErrDatabaseError, err)
	}
	return types, nil
}

func (r *membershipTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.MembershipType, error) {
	mt, err := scanMembershipType(r.db.QueryRowContext(ctx,
		`SELECT id, name, price, days, sessions FROM membership_types WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, "getting membership type by ID "+id.String())
	}
	return mt, nil
}

func (r *membershipTypeRepository) FindByName(ctx context.Context, name string) (*models.MembershipType, error) {
	mt, err := scanMembershipType(r.db.QueryRowContext(ctx,
		`SELECT id, name, price, days, sessions FROM membership_types WHERE name = $1`, name))
	if err != nil {
		return nil, wrapReadError(err, "getting membership type by name")
	}
	return mt, nil
}

func (r *membershipTypeRepository) Create(ctx context.Context, mt *models.MembershipType) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO membership_types (id, name, price, days, sessions) VALUES ($1, $2, $3, $4, $5)`,
		mt.ID, mt.Name, mt.Price, mt.Days, mt.Sessions)
	if err != nil {
		return wrapWriteError(err, "creating membership type")
	}
	return nil
}

func (r *membershipTypeRepository) Update(ctx context.Context, mt *models.MembershipType) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE membership_types SET name = $1, price = $2, days = $3, sessions = $4 WHERE id = $5`,
		mt.Name, mt.Price, mt.Days, mt.Sessions, mt.ID)
	if err != nil {
		return wrapWriteError(err, "updating membership type ID "+mt.ID.String())
	}
	return expectAffected(result, "updating membership type ID "+mt.ID.String())
}

func (r *membershipTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM membership_types WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, "deleting membership type ID "+id.String())
	}
	return expectAffected(result, "deleting membership type ID "+id.String())
}
