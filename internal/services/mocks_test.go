package services

import (
	"context"
	"time"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- users ---

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *mockUserRepo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error) {
	args := m.Called(ctx, phoneNumber)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *mockUserRepo) FindByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}
func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- trainers ---

type mockTrainerRepo struct{ mock.Mock }

func (m *mockTrainerRepo) FindAll(ctx context.Context) ([]models.Trainer, error) {
	args := m.Called(ctx)
	trainers, _ := args.Get(0).([]models.Trainer)
	return trainers, args.Error(1)
}
func (m *mockTrainerRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Trainer, error) {
	args := m.Called(ctx, id)
	trainer, _ := args.Get(0).(*models.Trainer)
	return trainer, args.Error(1)
}
func (m *mockTrainerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Trainer, error) {
	args := m.Called(ctx, userID)
	trainer, _ := args.Get(0).(*models.Trainer)
	return trainer, args.Error(1)
}
func (m *mockTrainerRepo) FindAllProfiles(ctx context.Context) ([]models.TrainerProfile, error) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]models.TrainerProfile)
	return profiles, args.Error(1)
}
func (m *mockTrainerRepo) FindProfileByID(ctx context.Context, id uuid.UUID) (*models.TrainerProfile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*models.TrainerProfile)
	return profile, args.Error(1)
}
func (m *mockTrainerRepo) Create(ctx context.Context, trainer *models.Trainer) error {
	return m.Called(ctx, trainer).Error(0)
}
func (m *mockTrainerRepo) Update(ctx context.Context, trainer *models.Trainer) error {
	return m.Called(ctx, trainer).Error(0)
}
func (m *mockTrainerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- training rooms ---

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) FindAll(ctx context.Context) ([]models.TrainingRoom, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]models.TrainingRoom)
	return rooms, args.Error(1)
}
func (m *mockRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.TrainingRoom, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*models.TrainingRoom)
	return room, args.Error(1)
}
func (m *mockRoomRepo) FindByName(ctx context.Context, name string) (*models.TrainingRoom, error) {
	args := m.Called(ctx, name)
	room, _ := args.Get(0).(*models.TrainingRoom)
	return room, args.Error(1)
}
func (m *mockRoomRepo) FindByCapacity(ctx context.Context, capacity int) ([]models.TrainingRoom, error) {
	args := m.Called(ctx, capacity)
	rooms, _ := args.Get(0).([]models.TrainingRoom)
	return rooms, args.Error(1)
}
func (m *mockRoomRepo) Create(ctx context.Context, room *models.TrainingRoom) error {
	return m.Called(ctx, room).Error(0)
}
func (m *mockRoomRepo) Update(ctx context.Context, room *models.TrainingRoom) error {
	return m.Called(ctx, room).Error(0)
}
func (m *mockRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- trainings ---

type mockTrainingRepo struct{ mock.Mock }

func (m *mockTrainingRepo) FindAll(ctx context.Context) ([]models.Training, error) {
	args := m.Called(ctx)
	trainings, _ := args.Get(0).([]models.Training)
	return trainings, args.Error(1)
}
func (m *mockTrainingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	args := m.Called(ctx, id)
	training, _ := args.Get(0).(*models.Training)
	return training, args.Error(1)
}
func (m *mockTrainingRepo) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]models.Training, error) {
	args := m.Called(ctx, roomID)
	trainings, _ := args.Get(0).([]models.Training)
	return trainings, args.Error(1)
}
func (m *mockTrainingRepo) FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]models.Training, error) {
	args := m.Called(ctx, trainerID)
	trainings, _ := args.Get(0).([]models.Training)
	return trainings, args.Error(1)
}
func (m *mockTrainingRepo) FindUpcomingDetails(ctx context.Context, after time.Time) ([]models.TrainingDetails, error) {
	args := m.Called(ctx, after)
	details, _ := args.Get(0).([]models.TrainingDetails)
	return details, args.Error(1)
}
func (m *mockTrainingRepo) FindDetailsByID(ctx context.Context, id uuid.UUID) (*models.TrainingDetails, error) {
	args := m.Called(ctx, id)
	details, _ := args.Get(0).(*models.TrainingDetails)
	return details, args.Error(1)
}
func (m *mockTrainingRepo) Create(ctx context.Context, training *models.Training) error {
	return m.Called(ctx, training).Error(0)
}
func (m *mockTrainingRepo) Update(ctx context.Context, training *models.Training) error {
	return m.Called(ctx, training).Error(0)
}
func (m *mockTrainingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- membership types ---

type mockMembershipTypeRepo struct{ mock.Mock }

func (m *mockMembershipTypeRepo) FindAll(ctx context.Context) ([]models.MembershipType, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]models.MembershipType)
	return types, args.Error(1)
}
func (m *mockMembershipTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.MembershipType, error) {
	args := m.Called(ctx, id)
	membershipType, _ := args.Get(0).(*models.MembershipType)
	return membershipType, args.Error(1)
}
func (m *mockMembershipTypeRepo) FindByName(ctx context.Context, name string) (*models.MembershipType, error) {
	args := m.Called(ctx, name)
	membershipType, _ := args.Get(0).(*models.MembershipType)
	return membershipType, args.Error(1)
}
func (m *mockMembershipTypeRepo) Create(ctx context.Context, membershipType *models.MembershipType) error {
	return m.Called(ctx, membershipType).Error(0)
}
func (m *mockMembershipTypeRepo) Update(ctx context.Context, membershipType *models.MembershipType) error {
	return m.Called(ctx, membershipType).Error(0)
}
func (m *mockMembershipTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- memberships ---

type mockMembershipRepo struct{ mock.Mock }

func (m *mockMembershipRepo) FindAll(ctx context.Context) ([]models.Membership, error) {
	args := m.Called(ctx)
	memberships, _ := args.Get(0).([]models.Membership)
	return memberships, args.Error(1)
}
func (m *mockMembershipRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Membership, error) {
	args := m.Called(ctx, id)
	membership, _ := args.Get(0).(*models.Membership)
	return membership, args.Error(1)
}
func (m *mockMembershipRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Membership, error) {
	args := m.Called(ctx, userID)
	memberships, _ := args.Get(0).([]models.Membership)
	return memberships, args.Error(1)
}
func (m *mockMembershipRepo) Create(ctx context.Context, membership *models.Membership) error {
	return m.Called(ctx, membership).Error(0)
}
func (m *mockMembershipRepo) Update(ctx context.Context, membership *models.Membership) error {
	return m.Called(ctx, membership).Error(0)
}
func (m *mockMembershipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockMembershipRepo) ConsumeSession(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockMembershipRepo) RestoreSession(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- attendances ---

type mockAttendanceRepo struct{ mock.Mock }

func (m *mockAttendanceRepo) FindAll(ctx context.Context) ([]models.Attendance, error) {
	args := m.Called(ctx)
	attendances, _ := args.Get(0).([]models.Attendance)
	return attendances, args.Error(1)
}
func (m *mockAttendanceRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	args := m.Called(ctx, id)
	attendance, _ := args.Get(0).(*models.Attendance)
	return attendance, args.Error(1)
}
func (m *mockAttendanceRepo) FindByMembershipID(ctx context.Context, membershipID uuid.UUID) ([]models.Attendance, error) {
	args := m.Called(ctx, membershipID)
	attendances, _ := args.Get(0).([]models.Attendance)
	return attendances, args.Error(1)
}
func (m *mockAttendanceRepo) FindByTrainingID(ctx context.Context, trainingID uuid.UUID) ([]models.Attendance, error) {
	args := m.Called(ctx, trainingID)
	attendances, _ := args.Get(0).([]models.Attendance)
	return attendances, args.Error(1)
}
func (m *mockAttendanceRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Attendance, error) {
	args := m.Called(ctx, userID)
	attendances, _ := args.Get(0).([]models.Attendance)
	return attendances, args.Error(1)
}
func (m *mockAttendanceRepo) CountActiveByTraining(ctx context.Context, trainingID uuid.UUID) (int, error) {
	args := m.Called(ctx, trainingID)
	return args.Int(0), args.Error(1)
}
func (m *mockAttendanceRepo) FindActive(ctx context.Context, membershipID, trainingID uuid.UUID) (*models.Attendance, error) {
	args := m.Called(ctx, membershipID, trainingID)
	attendance, _ := args.Get(0).(*models.Attendance)
	return attendance, args.Error(1)
}
func (m *mockAttendanceRepo) Create(ctx context.Context, attendance *models.Attendance) error {
	return m.Called(ctx, attendance).Error(0)
}
func (m *mockAttendanceRepo) Update(ctx context.Context, attendance *models.Attendance) error {
	return m.Called(ctx, attendance).Error(0)
}
func (m *mockAttendanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- news ---

type mockNewsClient struct{ mock.Mock }

func (m *mockNewsClient) TopHeadlines(ctx context.Context, params NewsFetchParams) ([]models.Article, error) {
	args := m.Called(ctx, params)
	articles, _ := args.Get(0).([]models.Article)
	return articles, args.Error(1)
}

type stubTokenIssuer struct {
	token string
	err   error
}

func (s stubTokenIssuer) GenerateAccessToken(uuid.UUID, string) (string, error) {
	return s.token, s.err
}
