package router

import (
	"fitness_club_backend/internal/handlers"
	"fitness_club_backend/internal/middleware"
	"fitness_club_backend/internal/validators"

	"github.com/gin-gonic/gin"
)

var (
	validID    = middleware.ValidateID
	validEmail = middleware.ValidateParam("email", validators.Email, "must be a valid email address")
	validPhone = middleware.ValidateParam("phone-number", validators.PhoneNumber, "must contain 10 to 15 digits with an optional leading '+'")
	validRole  = middleware.ValidateParam("role", validators.Role, "must be one of 'client', 'trainer', 'admin'")
	validName  = middleware.ValidateParam("name", validators.EntityName, "must be a non-empty name of at most 100 characters")
	validCap   = middleware.ValidateParam("capacity", validators.PositiveIntString, "must be a positive integer")
)

// createBody requires every field; partialBody checks only the fields sent.
func createBody(fields []validators.Field, optional ...validators.Field) gin.HandlerFunc {
	return middleware.ValidateBody(fields, true, optional...)
}

func partialBody(fields []validators.Field, optional ...validators.Field) gin.HandlerFunc {
	return middleware.ValidateBody(fields, false, optional...)
}

// SetupAuthRoutes sets up the public register and login routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", createBody(validators.RegisterFields), authHandler.Register)
		authRoutes.POST("/login", createBody(validators.LoginFields), authHandler.Login)
	}
}

// SetupUserRoutes sets up the self-service, trainer read-only and admin user routes.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, userHandler *handlers.UserHandler) {
	self := authenticatedGroup.Group("/user")
	{
		self.GET("/me", userHandler.GetMe)
		self.PUT("/me", partialBody(validators.RegisterFields), userHandler.UpdateMe)
	}

	trainerRoutes := authenticatedGroup.Group("/trainer/users")
	trainerRoutes.Use(middleware.AdminOrTrainer())
	{
		trainerRoutes.GET("/all", userHandler.GetUsers)
		trainerRoutes.GET("/:id", validID("id"), userHandler.GetUserByID)
		trainerRoutes.GET("/email/:email", validEmail, userHandler.GetUserByEmail)
		trainerRoutes.GET("/phone-number/:phone-number", validPhone, userHandler.GetUserByPhoneNumber)
	}

	adminRoutes := authenticatedGroup.Group("/admin/users")
	adminRoutes.Use(middleware.AdminOnly())
	{
		adminRoutes.GET("/all", userHandler.GetUsers)
		adminRoutes.GET("/:id", validID("id"), userHandler.GetUserByID)
		adminRoutes.GET("/email/:email", validEmail, userHandler.GetUserByEmail)
		adminRoutes.GET("/phone-number/:phone-number", validPhone, userHandler.GetUserByPhoneNumber)
		adminRoutes.GET("/role/:role", validRole, userHandler.GetUsersByRole)
		adminRoutes.POST("", createBody(validators.UserFields), userHandler.CreateUser)
		adminRoutes.PUT("/:id", validID("id"), partialBody(validators.UserFields), userHandler.UpdateUser)
		adminRoutes.DELETE("/:id", validID("id"), userHandler.DeleteUser)
	}
}

// SetupTrainerRoutes sets up the trainer catalogue, the trainer's own profile and admin trainer routes.
func SetupTrainerRoutes(authenticatedGroup *gin.RouterGroup, trainerHandler *handlers.TrainerHandler) {
	catalogue := authenticatedGroup.Group("/trainers")
	{
		catalogue.GET("/all", trainerHandler.ListProfiles)
		catalogue.GET("/:id", validID("id"), trainerHandler.GetProfile)
	}

	self := authenticatedGroup.Group("/trainer")
	self.Use(middleware.AdminOrTrainer())
	{
		self.GET("/me", trainerHandler.GetMe)
		self.PUT("/me", partialBody(validators.TrainerOptionalFields), trainerHandler.UpdateMe)
	}

	adminRoutes := authenticatedGroup.Group("/admin/trainers")
	adminRoutes.Use(middleware.AdminOnly())
	{
		adminRoutes.GET("/all", trainerHandler.GetTrainers)
		adminRoutes.GET("/:id", validID("id"), trainerHandler.GetTrainerByID)
		adminRoutes.GET("/user/:userId", validID("userId"), trainerHandler.GetTrainerByUserID)
		adminRoutes.POST("", createBody(validators.TrainerFields, validators.TrainerOptionalFields...), trainerHandler.CreateTrainer)
		adminRoutes.PUT("/:id", validID("id"), partialBody(validators.TrainerFields, validators.TrainerOptionalFields...), trainerHandler.UpdateTrainer)
		adminRoutes.DELETE("/:id", validID("id"), trainerHandler.DeleteTrainer)
	}
}

// SetupTrainingRoomRoutes sets up the admin training room routes.
func SetupTrainingRoomRoutes(authenticatedGroup *gin.RouterGroup, roomHandler *handlers.TrainingRoomHandler) {
	adminRoutes := authenticatedGroup.Group("/admin/training-rooms")
	adminRoutes.Use(middleware.AdminOnly())
	{
		adminRoutes.GET("/all", roomHandler.GetTrainingRooms)
		adminRoutes.GET("/:id", validID("id"), roomHandler.GetTrainingRoomByID)
		adminRoutes.GET("/name/:name", validName, roomHandler.GetTrainingRoomByName)
		adminRoutes.GET("/capacity/:capacity", validCap, roomHandler.GetTrainingRoomsByCapacity)
		adminRoutes.POST("", createBody(validators.TrainingRoomFields), roomHandler.CreateTrainingRoom)
		adminRoutes.PUT("/:id", validID("id"), partialBody(validators.TrainingRoomFields), roomHandler.UpdateTrainingRoom)
		adminRoutes.DELETE("/:id", validID("id"), roomHandler.DeleteTrainingRoom)
	}
}

// SetupTrainingRoutes sets up the upcoming-training catalogue, the trainer's own schedule and admin training routes.
func SetupTrainingRoutes(authenticatedGroup *gin.RouterGroup, trainingHandler *handlers.TrainingHandler) {
	catalogue := authenticatedGroup.Group("/trainings")
	{
		catalogue.GET("/all", trainingHandler.ListUpcoming)
		catalogue.GET("/:id", validID("id"), trainingHandler.GetDetails)
	}

	own := authenticatedGroup.Group("/trainer/trainings")
	own.Use(middleware.AdminOrTrainer())
	{
		own.GET("", trainingHandler.GetOwnTrainings)
		own.POST("", createBody(validators.TrainerTrainingFields), trainingHandler.CreateOwnTraining)
		own.PUT("/:id", validID("id"), partialBody(validators.TrainerTrainingFields), trainingHandler.UpdateOwnTraining)
		own.DELETE("/:id", validID("id"), trainingHandler.DeleteOwnTraining)
	}

	adminRoutes := authenticatedGroup.Group("/admin/trainings")
	adminRoutes.Use(middleware.AdminOnly())
	{
		adminRoutes.GET("/all", trainingHandler.GetTrainings)
		adminRoutes.GET("/:id", validID("id"), trainingHandler.GetTrainingByID)
		adminRoutes.GET("/room/:roomId", validID("roomId"), trainingHandler.GetTrainingsByRoom)
		adminRoutes.GET("/trainer/:trainerId", validID("trainerId"), trainingHandler.GetTrainingsByTrainer)
		adminRoutes.POST("", createBody(validators.TrainingFields), trainingHandler.CreateTraining)
		adminRoutes.PUT("/:id", validID("id"), partialBody(validators.TrainingFields), trainingHandler.UpdateTraining)
		adminRoutes.DELETE("/:id", validID("id"), trainingHandler.DeleteTraining)
	}
}

// SetupMembershipTypeRoutes sets up the public membership type list and admin routes.
func SetupMembershipTypeRoutes(authenticatedGroup *gin.RouterGroup, typeHandler *handlers.MembershipTypeHandler) {
	authenticatedGroup.GET("/membership-types/all", typeHandler.GetMembershipTypes)

	adminRoutes := authenticatedGroup.Group("/admin/membership-types")
	adminRoutes.Use(middleware.AdminOnly())
	{
		adminRoutes.GET("/all", typeHandler.GetMembershipTypes)
		adminRoutes.GET("/:id", validID("id"), typeHandler.GetMembershipTypeByID)
		adminRoutes.GET("/name/:name", validName, typeHandler.GetMembershipTypeByName)
		adminRoutes.POST("", createBody(validators.MembershipTypeFields), typeHandler.CreateMembershipType)
		adminRoutes.PUT("/:id", validID("id"), partialBody(validators.MembershipTypeFields), typeHandler.UpdateMembershipType)
		adminRoutes.DELETE("/:id", validID("id"), typeHandler.DeleteMembershipType)
	}
}

// SetupMembershipRoutes sets up the client's membership routes and admin routes.
func SetupMembershipRoutes(authenticatedGroup *gin.RouterGroup, membershipHandler *handlers.MembershipHandler) {
	self := authenticatedGroup.Group("/memberships")
	{
		self.GET("/me", membershipHandler.GetMyMemberships)
		self.POST("", createBody(validators.PurchaseMembershipFields), membershipHandler.PurchaseMembership)
	}

	adminRoutes := authenticatedGroup.Group("/admin/memberships")
	adminRoutes.Use(middleware.AdminOnly())
	{
		adminRoutes.GET("/all", membershipHandler.GetMemberships)
		adminRoutes.GET("/:id", validID("id"), membershipHandler.GetMembershipByID)
		adminRoutes.GET("/user/:userId", validID("userId"), membershipHandler.GetMembershipsByUser)
		adminRoutes.POST("", createBody(validators.MembershipFields, validators.MembershipOptionalFields...), membershipHandler.CreateMembership)
		adminRoutes.PUT("/:id", validID("id"), partialBody(validators.MembershipFields, validators.MembershipOptionalFields...), membershipHandler.UpdateMembership)
		adminRoutes.DELETE("/:id", validID("id"), membershipHandler.DeleteMembership)
	}
}

// SetupAttendanceRoutes sets up sign-up, cancellation and admin attendance routes.
func SetupAttendanceRoutes(authenticatedGroup *gin.RouterGroup, attendanceHandler *handlers.AttendanceHandler) {
	self := authenticatedGroup.Group("/attendances")
	{
		self.GET("/me", attendanceHandler.GetMyAttendances)
		self.POST("", createBody(validators.SignUpFields), attendanceHandler.SignUp)
		self.POST("/:id/cancel", validID("id"), attendanceHandler.Cancel)
	}

	adminRoutes := authenticatedGroup.Group("/admin/attendances")
	adminRoutes.Use(middleware.AdminOnly())
	{
		adminRoutes.GET("/all", attendanceHandler.GetAttendances)
		adminRoutes.GET("/:id", validID("id"), attendanceHandler.GetAttendanceByID)
		adminRoutes.GET("/membership/:membershipId", validID("membershipId"), attendanceHandler.GetAttendancesByMembership)
		adminRoutes.GET("/training/:trainingId", validID("trainingId"), attendanceHandler.GetAttendancesByTraining)
		adminRoutes.POST("", createBody(validators.AttendanceFields), attendanceHandler.CreateAttendance)
		adminRoutes.PUT("/:id", validID("id"), partialBody(validators.AttendanceFields), attendanceHandler.UpdateAttendance)
		adminRoutes.DELETE("/:id", validID("id"), attendanceHandler.DeleteAttendance)
	}
}

// SetupNewsRoutes sets up the news proxy route.
func SetupNewsRoutes(apiGroup *gin.RouterGroup, newsHandler *handlers.NewsHandler) {
	apiGroup.GET("/news", newsHandler.GetNews)
}
