package router

import (
	"database/sql"
	"net/http"

	_ "fitness_club_backend/internal/docs" // registers the OpenAPI document with swag
	"fitness_club_backend/internal/handlers"
	"fitness_club_backend/internal/middleware"
	"fitness_club_backend/internal/repositories"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/swaggo/swag"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, jwtManager *utils.JWTManager, newsClient services.NewsClient) {
	// Initialize Repositories
	userRepo := repositories.NewUserRepository(db)
	trainerRepo := repositories.NewTrainerRepository(db)
	roomRepo := repositories.NewTrainingRoomRepository(db)
	trainingRepo := repositories.NewTrainingRepository(db)
	membershipTypeRepo := repositories.NewMembershipTypeRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)

	// Initialize Services
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userService, jwtManager)
	trainerService := services.NewTrainerService(trainerRepo, userRepo)
	roomService := services.NewTrainingRoomService(roomRepo)
	trainingService := services.NewTrainingService(trainingRepo, roomRepo, trainerRepo)
	membershipTypeService := services.NewMembershipTypeService(membershipTypeRepo)
	membershipService := services.NewMembershipService(membershipRepo, membershipTypeRepo, userRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, membershipRepo, trainingRepo, roomRepo)
	newsService := services.NewNewsService(newsClient)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	trainerHandler := handlers.NewTrainerHandler(trainerService)
	roomHandler := handlers.NewTrainingRoomHandler(roomService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	membershipTypeHandler := handlers.NewMembershipTypeHandler(membershipTypeService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	newsHandler := handlers.NewNewsHandler(newsService)

	SetupDocsRoutes(engine)
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	public := engine.Group("")
	SetupAuthRoutes(public, authHandler)
	SetupNewsRoutes(public, newsHandler)

	authenticated := engine.Group("")
	authenticated.Use(middleware.AuthMiddleware(jwtManager, userRepo))
	{
		SetupUserRoutes(authenticated, userHandler)
		SetupTrainerRoutes(authenticated, trainerHandler)
		SetupTrainingRoomRoutes(authenticated, roomHandler)
		SetupTrainingRoutes(authenticated, trainingHandler)
		SetupMembershipTypeRoutes(authenticated, membershipTypeHandler)
		SetupMembershipRoutes(authenticated, membershipHandler)
		SetupAttendanceRoutes(authenticated, attendanceHandler)
	}
}

// SetupDocsRoutes serves the generated OpenAPI document and the Swagger UI.
func SetupDocsRoutes(engine *gin.Engine) {
	engine.GET("/swagger.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			utils.LogError(err, "Failed to read swagger document")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load API documentation.", ""))
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})
	engine.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger.json"))))
}
