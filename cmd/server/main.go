package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fitness_club_backend/internal/config"
	"fitness_club_backend/internal/database"
	"fitness_club_backend/internal/router"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// @title           Fitness Club API
// @version         1.0
// @description     Members, trainers, rooms, trainings, memberships and attendance for a fitness club.

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.InitLogger("info", "production")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize Logger
	utils.InitLogger(cfg.LogLevel, cfg.AppEnv)
	utils.LogInfo("Configuration loaded", map[string]interface{}{"env": cfg.AppEnv})

	db, err := database.Connect(context.Background(), cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.MigrateOnStart {
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	jwtManager, err := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create JWT manager")
	}
	newsClient := services.NewGNewsClient(cfg.News.BaseURL, cfg.News.APIKey, cfg.News.Lang, cfg.News.Timeout)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(utils.GinLogger(), gin.Recovery())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	router.Setup(engine, db, jwtManager, newsClient)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	go func() {
		utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Server.Port})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn().Msg("Shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.LogError(err, "Server forced to shutdown")
		return
	}
	utils.LogInfo("Server exited properly")
}
