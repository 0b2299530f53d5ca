package main

import (
	"errors"
	"os"

	"fitness_club_backend/internal/config"
	"fitness_club_backend/internal/database"
	"fitness_club_backend/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	"github.com/rs/zerolog/log"
)

// Usage: migrate [up|down|version]. Defaults to up.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.InitLogger("info", "production")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	utils.InitLogger(cfg.LogLevel, cfg.AppEnv)

	m, err := database.NewURLMigrator(cfg.MigrateURL())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create migrator")
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("Migration up failed")
		}
		utils.LogInfo("Migration up successful")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("Migration down failed")
		}
		utils.LogInfo("Migration down successful")
	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("Failed to read schema version")
		}
		utils.LogInfo("Schema version", map[string]interface{}{"version": version, "dirty": dirty})
	default:
		log.Fatal().Str("command", cmd).Msg("Unknown command, use up, down or version")
	}
}
