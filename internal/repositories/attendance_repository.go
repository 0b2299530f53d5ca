package repositories

import (
	"context"
	"fmt"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// AttendanceRepository defines the interface for attendance persistence.
type AttendanceRepository interface {
	FindAll(ctx context.Context) ([]models.Attendance, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error)
	FindByMembershipID(ctx context.Context, membershipID uuid.UUID) ([]models.Attendance, error)
	FindByTrainingID(ctx context.Context, trainingID uuid.UUID) ([]models.Attendance, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Attendance, error)
	// CountActiveByTraining counts sign-ups that are not cancelled.
	CountActiveByTraining(ctx context.Context, trainingID uuid.UUID) (int, error)
	// FindActive returns the non-cancelled sign-up of a membership for a training.
	FindActive(ctx context.Context, membershipID, trainingID uuid.UUID) (*models.Attendance, error)
	Create(ctx context.Context, attendance *models.Attendance) error
	Update(ctx context.Context, attendance *models.Attendance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type attendanceRepository struct {
	db SQLExecutor
}

// NewAttendanceRepository creates a new instance of AttendanceRepository.
func NewAttendanceRepository(db SQLExecutor) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row scanner) (*models.Attendance, error) {
	a := &models.Attendance{}
	if err := row.Scan(&a.ID, &a.MembershipID, &a.TrainingID, &a.Status); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *attendanceRepository) queryAttendances(ctx context.Context, op, query string, args ...interface{}) ([]models.Attendance, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatabaseError, op, err)
	}
	defer rows.Close()

	attendances := []models.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning attendance: %v", ErrDatabaseError, err)
		}
		attendances = append(attendances, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating attendance rows: %v", ErrDatabaseError, err)
	}
	return attendances, nil
}

func (r *attendanceRepository) FindAll(ctx context.Context) ([]models.Attendance, error) {
	return r.queryAttendances(ctx, "querying attendances",
		`SELECT id, membership_id, training_id, status FROM attendances ORDER BY id`)
}

func (r *attendanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	a, err := scanAttendance(r.db.QueryRowContext(ctx,
		`SELECT id, membership_id, training_id, status FROM attendances WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, "getting attendance by ID "+id.String())
	}
	return a, nil
}

func (r *attendanceRepository) FindByMembershipID(ctx context.Context, membershipID uuid.UUID) ([]models.Attendance, error) {
	return r.queryAttendances(ctx, "querying attendances by membership",
		`SELECT id, membership_id, training_id, status FROM attendances WHERE membership_id = $1 ORDER BY id`, membershipID)
}

func (r *attendanceRepository) FindByTrainingID(ctx context.Context, trainingID uuid.UUID) ([]models.Attendance, error) {
	return r.queryAttendances(ctx, "querying attendances by training",
		`SELECT id, membership_id, training_id, status FROM attendances WHERE training_id = $1 ORDER BY id`, trainingID)
}

func (r *attendanceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Attendance, error) {
	return r.queryAttendances(ctx, "querying attendances by user",
		`SELECT a.id, a.membership_id, a.training_id, a.status
		   FROM attendances a JOIN memberships m ON m.id = a.membership_id
		  WHERE m.user_id = $1 ORDER BY a.id`, userID)
}

func (r *attendanceRepository) CountActiveByTraining(ctx context.Context, trainingID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendances WHERE training_id = $1 AND status <> 'cancelled'`, trainingID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting attendances of training %s: %v", ErrDatabaseError, trainingID, err)
	}
	return count, nil
}

func (r *attendanceRepository) FindActive(ctx context.Context, membershipID, trainingID uuid.UUID) (*models.Attendance, error) {
	a, err := scanAttendance(r.db.QueryRowContext(ctx,
		`SELECT id, membership_id, training_id, status FROM attendances
		  WHERE membership_id = $1 AND training_id = $2 AND status <> 'cancelled'
		  LIMIT 1`, membershipID, trainingID))
	if err != nil {
		return nil, wrapReadError(err, "getting active attendance")
	}
	return a, nil
}

func (r *attendanceRepository) Create(ctx context.Context, a *models.Attendance) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attendances (id, membership_id, training_id, status) VALUES ($1, $2, $3, $4)`,
		a.ID, a.MembershipID, a.TrainingID, a.Status)
	if err != nil {
		return wrapWriteError(err, "creating attendance")
	}
	return nil
}

func (r *attendanceRepository) Update(ctx context.Context, a *models.Attendance) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE attendances SET membership_id = $1, training_id = $2, status = $3 WHERE id = $4`,
		a.MembershipID, a.TrainingID, a.Status, a.ID)
	if err != nil {
		return wrapWriteError(err, "updating attendance ID "+a.ID.String())
	}
	return expectAffected(result, "updating attendance ID "+a.ID.String())
}

func (r *attendanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, "deleting attendance ID "+id.String())
	}
	return expectAffected(result, "deleting attendance ID "+id.String())
}
