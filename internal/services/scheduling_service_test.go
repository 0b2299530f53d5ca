package services

import (
	"context"
	"testing"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrainerService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("promotes client to trainer", func(t *testing.T) {
		users := new(mockUserRepo)
		trainers := new(mockTrainerRepo)
		users.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID, Role: models.RoleClient}, nil).Once()
		trainers.On("FindByUserID", mock.Anything, userID).Return(nil, repositories.ErrNotFound).Once()
		trainers.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		users.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == models.RoleTrainer
		})).Return(nil).Once()

		description := "  "
		trainer, err := NewTrainerService(trainers, users).Create(ctx, CreateTrainerRequest{UserID: userID, Description: &description})

		require.NoError(t, err)
		assert.Equal(t, userID, trainer.UserID)
		assert.Nil(t, trainer.Description)
		users.AssertExpectations(t)
		trainers.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		users := new(mockUserRepo)
		trainers := new(mockTrainerRepo)
		users.On("FindByID", mock.Anything, userID).Return(nil, repositories.ErrNotFound).Once()

		_, err := NewTrainerService(trainers, users).Create(ctx, CreateTrainerRequest{UserID: userID})

		assert.ErrorIs(t, err, ErrUserNotFound)
		trainers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("user already a trainer", func(t *testing.T) {
		users := new(mockUserRepo)
		trainers := new(mockTrainerRepo)
		users.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID, Role: models.RoleTrainer}, nil).Once()
		trainers.On("FindByUserID", mock.Anything, userID).Return(&models.Trainer{ID: uuid.New(), UserID: userID}, nil).Once()

		_, err := NewTrainerService(trainers, users).Create(ctx, CreateTrainerRequest{UserID: userID})

		assert.ErrorIs(t, err, ErrTrainerExists)
	})
}

func TestTrainerService_UpdateOwn(t *testing.T) {
	userID := uuid.New()
	trainer := &models.Trainer{ID: uuid.New(), UserID: userID}
	users := new(mockUserRepo)
	trainers := new(mockTrainerRepo)
	trainers.On("FindByUserID", mock.Anything, userID).Return(trainer, nil).Once()
	trainers.On("FindByID", mock.Anything, trainer.ID).Return(trainer, nil).Once()
	trainers.On("Update", mock.Anything, trainer).Return(nil).Once()

	description := "Yoga and stretching"
	updated, err := NewTrainerService(trainers, users).UpdateOwn(context.Background(), userID, UpdateTrainerRequest{Description: &description})

	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, description, *updated.Description)
	assert.Equal(t, userID, updated.UserID)
}

func TestTrainingRoomService(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name", func(t *testing.T) {
		rooms := new(mockRoomRepo)
		rooms.On("FindByName", mock.Anything, "Yoga").Return(&models.TrainingRoom{ID: uuid.New(), Name: "Yoga"}, nil).Once()

		_, err := NewTrainingRoomService(rooms).Create(ctx, CreateTrainingRoomRequest{Name: " Yoga ", Capacity: 10})

		assert.ErrorIs(t, err, ErrTrainingRoomNameExists)
	})

	t.Run("partial update", func(t *testing.T) {
		id := uuid.New()
		rooms := new(mockRoomRepo)
		rooms.On("FindByID", mock.Anything, id).Return(&models.TrainingRoom{ID: id, Name: "Yoga", Capacity: 10}, nil).Once()
		rooms.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		capacity := 25
		room, err := NewTrainingRoomService(rooms).Update(ctx, id, UpdateTrainingRoomRequest{Capacity: &capacity})

		require.NoError(t, err)
		assert.Equal(t, "Yoga", room.Name)
		assert.Equal(t, 25, room.Capacity)
	})

	t.Run("capacity lookup must be positive", func(t *testing.T) {
		_, err := NewTrainingRoomService(new(mockRoomRepo)).FindByCapacity(ctx, 0)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("delete not found", func(t *testing.T) {
		id := uuid.New()
		rooms := new(mockRoomRepo)
		rooms.On("Delete", mock.Anything, id).Return(repositories.ErrNotFound).Once()

		assert.ErrorIs(t, NewTrainingRoomService(rooms).Delete(ctx, id), ErrTrainingRoomNotFound)
	})
}

func TestTrainingService_Create(t *testing.T) {
	ctx := context.Background()
	roomID, trainerID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		trainings, rooms, trainers := new(mockTrainingRepo), new(mockRoomRepo), new(mockTrainerRepo)
		rooms.On("FindByID", mock.Anything, roomID).Return(&models.TrainingRoom{ID: roomID, Capacity: 10}, nil).Once()
		trainers.On("FindByID", mock.Anything, trainerID).Return(&models.Trainer{ID: trainerID}, nil).Once()
		trainings.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		training, err := NewTrainingService(trainings, rooms, trainers).Create(ctx, CreateTrainingRequest{
			RoomID: roomID, TrainerID: trainerID, Date: "2030-05-01 10:00:00",
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC), training.Date)
	})

	t.Run("missing room", func(t *testing.T) {
		trainings, rooms, trainers := new(mockTrainingRepo), new(mockRoomRepo), new(mockTrainerRepo)
		rooms.On("FindByID", mock.Anything, roomID).Return(nil, repositories.ErrNotFound).Once()

		_, err := NewTrainingService(trainings, rooms, trainers).Create(ctx, CreateTrainingRequest{
			RoomID: roomID, TrainerID: trainerID, Date: "2030-05-01 10:00:00",
		})

		assert.ErrorIs(t, err, ErrTrainingRoomNotFound)
		trainings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing trainer", func(t *testing.T) {
		trainings, rooms, trainers := new(mockTrainingRepo), new(mockRoomRepo), new(mockTrainerRepo)
		rooms.On("FindByID", mock.Anything, roomID).Return(&models.TrainingRoom{ID: roomID}, nil).Once()
		trainers.On("FindByID", mock.Anything, trainerID).Return(nil, repositories.ErrNotFound).Once()

		_, err := NewTrainingService(trainings, rooms, trainers).Create(ctx, CreateTrainingRequest{
			RoomID: roomID, TrainerID: trainerID, Date: "2030-05-01 10:00:00",
		})

		assert.ErrorIs(t, err, ErrTrainerNotFound)
	})
}

func TestTrainingService_TrainerOwnership(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mine := &models.Trainer{ID: uuid.New(), UserID: userID}
	foreign := &models.Training{ID: uuid.New(), TrainerID: uuid.New()}

	trainings, rooms, trainers := new(mockTrainingRepo), new(mockRoomRepo), new(mockTrainerRepo)
	trainers.On("FindByUserID", mock.Anything, userID).Return(mine, nil)
	trainings.On("FindByID", mock.Anything, foreign.ID).Return(foreign, nil)
	svc := NewTrainingService(trainings, rooms, trainers)

	err := svc.DeleteForTrainer(ctx, userID, foreign.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	date := "2030-05-01 10:00:00"
	_, err = svc.UpdateForTrainer(ctx, userID, foreign.ID, TrainerTrainingRequest{Date: &date})
	assert.ErrorIs(t, err, ErrForbidden)

	trainings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	trainings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMembershipTypeService_Update(t *testing.T) {
	id := uuid.New()
	types := new(mockMembershipTypeRepo)
	types.On("FindByID", mock.Anything, id).Return(&models.MembershipType{ID: id, Name: "Monthly", Price: 1000, Days: 30, Sessions: 8}, nil).Once()

	days := 0
	_, err := NewMembershipTypeService(types).Update(context.Background(), id, UpdateMembershipTypeRequest{Days: &days})

	assert.ErrorIs(t, err, ErrValidation)
	types.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMembershipService_Create(t *testing.T) {
	ctx := context.Background()
	userID, typeID := uuid.New(), uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newService := func() (*membershipService, *mockMembershipRepo, *mockMembershipTypeRepo, *mockUserRepo) {
		memberships, types, users := new(mockMembershipRepo), new(mockMembershipTypeRepo), new(mockUserRepo)
		svc := NewMembershipService(memberships, types, users).(*membershipService)
		svc.now = func() time.Time { return now }
		return svc, memberships, types, users
	}

	t.Run("window and sessions come from the type", func(t *testing.T) {
		svc, memberships, types, users := newService()
		users.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil).Once()
		types.On("FindByID", mock.Anything, typeID).Return(&models.MembershipType{ID: typeID, Days: 30, Sessions: 8}, nil).Once()
		memberships.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		membership, err := svc.Purchase(ctx, userID, PurchaseMembershipRequest{MembershipTypeID: typeID})

		require.NoError(t, err)
		assert.Equal(t, now, membership.StartDate)
		assert.Equal(t, now.AddDate(0, 0, 30), membership.EndDate)
		assert.Equal(t, 8, membership.AvailableSessions)
	})

	t.Run("missing type", func(t *testing.T) {
		svc, _, types, users := newService()
		users.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil).Once()
		types.On("FindByID", mock.Anything, typeID).Return(nil, repositories.ErrNotFound).Once()

		_, err := svc.Create(ctx, CreateMembershipRequest{UserID: userID, MembershipTypeID: typeID})

		assert.ErrorIs(t, err, ErrMembershipTypeNotFound)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _, types, users := newService()
		users.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil).Once()
		types.On("FindByID", mock.Anything, typeID).Return(&models.MembershipType{ID: typeID, Days: 30}, nil).Once()

		start, end := "2025-03-10 00:00:00", "2025-03-01 00:00:00"
		_, err := svc.Create(ctx, CreateMembershipRequest{UserID: userID, MembershipTypeID: typeID, StartDate: &start, EndDate: &end})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

type signUpFixture struct {
	svc         *attendanceService
	attendances *mockAttendanceRepo
	memberships *mockMembershipRepo
	trainings   *mockTrainingRepo
	rooms       *mockRoomRepo
	userID      uuid.UUID
	membership  *models.Membership
	training    *models.Training
	room        *models.TrainingRoom
}

func newSignUpFixture() *signUpFixture {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	f := &signUpFixture{
		attendances: new(mockAttendanceRepo),
		memberships: new(mockMembershipRepo),
		trainings:   new(mockTrainingRepo),
		rooms:       new(mockRoomRepo),
		userID:      uuid.New(),
		room:        &models.TrainingRoom{ID: uuid.New(), Name: "Yoga", Capacity: 2},
	}
	f.membership = &models.Membership{
		ID:                uuid.New(),
		UserID:            f.userID,
		StartDate:         now.AddDate(0, 0, -1),
		EndDate:           now.AddDate(0, 0, 29),
		AvailableSessions: 3,
	}
	f.training = &models.Training{ID: uuid.New(), RoomID: f.room.ID, Date: now.Add(24 * time.Hour)}
	f.svc = NewAttendanceService(f.attendances, f.memberships, f.trainings, f.rooms).(*attendanceService)
	f.svc.now = func() time.Time { return now }
	return f
}

func (f *signUpFixture) request() SignUpRequest {
	return SignUpRequest{MembershipID: f.membership.ID, TrainingID: f.training.ID}
}

func (f *signUpFixture) expectLookups() {
	f.memberships.On("FindByID", mock.Anything, f.membership.ID).Return(f.membership, nil)
	f.trainings.On("FindByID", mock.Anything, f.training.ID).Return(f.training, nil)
}

func TestAttendanceService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("success consumes a session", func(t *testing.T) {
		f := newSignUpFixture()
		f.expectLookups()
		f.attendances.On("FindActive", mock.Anything, f.membership.ID, f.training.ID).Return(nil, repositories.ErrNotFound).Once()
		f.rooms.On("FindByID", mock.Anything, f.room.ID).Return(f.room, nil).Once()
		f.attendances.On("CountActiveByTraining", mock.Anything, f.training.ID).Return(1, nil).Once()
		f.memberships.On("ConsumeSession", mock.Anything, f.membership.ID).Return(nil).Once()
		f.attendances.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		attendance, err := f.svc.SignUp(ctx, f.userID, f.request())

		require.NoError(t, err)
		assert.Equal(t, models.AttendanceWaiting, attendance.Status)
		f.memberships.AssertExpectations(t)
		f.attendances.AssertExpectations(t)
	})

	t.Run("someone else's membership", func(t *testing.T) {
		f := newSignUpFixture()
		f.expectLookups()

		_, err := f.svc.SignUp(ctx, uuid.New(), f.request())

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("training in the past", func(t *testing.T) {
		f := newSignUpFixture()
		f.training.Date = f.svc.now().Add(-time.Hour)
		f.expectLookups()

		_, err := f.svc.SignUp(ctx, f.userID, f.request())

		assert.ErrorIs(t, err, ErrTrainingInPast)
	})

	t.Run("training after membership ends", func(t *testing.T) {
		f := newSignUpFixture()
		f.training.Date = f.membership.EndDate.Add(time.Hour)
		f.expectLookups()

		_, err := f.svc.SignUp(ctx, f.userID, f.request())

		assert.ErrorIs(t, err, ErrMembershipInactive)
	})

	t.Run("already signed up", func(t *testing.T) {
		f := newSignUpFixture()
		f.expectLookups()
		f.attendances.On("FindActive", mock.Anything, f.membership.ID, f.training.ID).Return(&models.Attendance{ID: uuid.New()}, nil).Once()

		_, err := f.svc.SignUp(ctx, f.userID, f.request())

		assert.ErrorIs(t, err, ErrAlreadySignedUp)
	})

	t.Run("room full", func(t *testing.T) {
		f := newSignUpFixture()
		f.expectLookups()
		f.attendances.On("FindActive", mock.Anything, f.membership.ID, f.training.ID).Return(nil, repositories.ErrNotFound).Once()
		f.rooms.On("FindByID", mock.Anything, f.room.ID).Return(f.room, nil).Once()
		f.attendances.On("CountActiveByTraining", mock.Anything, f.training.ID).Return(2, nil).Once()

		_, err := f.svc.SignUp(ctx, f.userID, f.request())

		assert.ErrorIs(t, err, ErrTrainingFull)
		f.memberships.AssertNotCalled(t, "ConsumeSession", mock.Anything, mock.Anything)
	})

	t.Run("no sessions left", func(t *testing.T) {
		f := newSignUpFixture()
		f.expectLookups()
		f.attendances.On("FindActive", mock.Anything, f.membership.ID, f.training.ID).Return(nil, repositories.ErrNotFound).Once()
		f.rooms.On("FindByID", mock.Anything, f.room.ID).Return(f.room, nil).Once()
		f.attendances.On("CountActiveByTraining", mock.Anything, f.training.ID).Return(0, nil).Once()
		f.memberships.On("ConsumeSession", mock.Anything, f.membership.ID).Return(repositories.ErrNotFound).Once()

		_, err := f.svc.SignUp(ctx, f.userID, f.request())

		assert.ErrorIs(t, err, ErrNoSessionsLeft)
	})

	t.Run("failed insert gives the session back", func(t *testing.T) {
		f := newSignUpFixture()
		f.expectLookups()
		f.attendances.On("FindActive", mock.Anything, f.membership.ID, f.training.ID).Return(nil, repositories.ErrNotFound).Once()
		f.rooms.On("FindByID", mock.Anything, f.room.ID).Return(f.room, nil).Once()
		f.attendances.On("CountActiveByTraining", mock.Anything, f.training.ID).Return(0, nil).Once()
		f.memberships.On("ConsumeSession", mock.Anything, f.membership.ID).Return(nil).Once()
		f.attendances.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrDatabaseError).Once()
		f.memberships.On("RestoreSession", mock.Anything, f.membership.ID).Return(nil).Once()

		_, err := f.svc.SignUp(ctx, f.userID, f.request())

		assert.ErrorIs(t, err, repositories.ErrDatabaseError)
		f.memberships.AssertExpectations(t)
	})
}

func TestAttendanceService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("waiting attendance is cancelled", func(t *testing.T) {
		f := newSignUpFixture()
		attendance := &models.Attendance{ID: uuid.New(), MembershipID: f.membership.ID, Status: models.AttendanceWaiting}
		f.attendances.On("FindByID", mock.Anything, attendance.ID).Return(attendance, nil).Once()
		f.memberships.On("FindByID", mock.Anything, f.membership.ID).Return(f.membership, nil).Once()
		f.attendances.On("Update", mock.Anything, attendance).Return(nil).Once()
		f.memberships.On("RestoreSession", mock.Anything, f.membership.ID).Return(nil).Once()

		cancelled, err := f.svc.Cancel(ctx, f.userID, attendance.ID)

		require.NoError(t, err)
		assert.Equal(t, models.AttendanceCancelled, cancelled.Status)
		f.memberships.AssertExpectations(t)
	})

	t.Run("attended cannot be cancelled", func(t *testing.T) {
		f := newSignUpFixture()
		attendance := &models.Attendance{ID: uuid.New(), MembershipID: f.membership.ID, Status: models.AttendanceAttended}
		f.attendances.On("FindByID", mock.Anything, attendance.ID).Return(attendance, nil).Once()
		f.memberships.On("FindByID", mock.Anything, f.membership.ID).Return(f.membership, nil).Once()

		_, err := f.svc.Cancel(ctx, f.userID, attendance.ID)

		assert.ErrorIs(t, err, ErrAttendanceNotCancellable)
	})
}

func TestAttendanceService_CreateRejectsUnknownStatus(t *testing.T) {
	f := newSignUpFixture()

	_, err := f.svc.Create(context.Background(), CreateAttendanceRequest{
		MembershipID: f.membership.ID, TrainingID: f.training.ID, Status: "maybe",
	})

	assert.ErrorIs(t, err, ErrValidation)
}
