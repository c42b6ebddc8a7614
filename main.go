package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/expense-planner/backend/internal/models"
	"github.com/expense-planner/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env file is not an error, all settings have defaults
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msgf("environment variable API_URL must be a valid URL: %s", err)
	}

	if ttl, ok := os.LookupEnv("SESSION_TTL"); ok {
		models.SessionTTL, err = time.ParseDuration(ttl)
		if err != nil || models.SessionTTL <= 0 {
			log.Fatal().Str("SESSION_TTL", ttl).Msg("SESSION_TTL must be a positive duration, e.g. 24h")
		}
	}

	dsn := os.Getenv("DATABASE_PATH")
	if dsn == "" {
		dsn = filepath.Join(".", "data", "gorm.db")
	}

	// Create data directory
	err = os.MkdirAll(filepath.Dir(dsn), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	purged, err := models.PurgeExpiredSessions(models.DB, time.Now())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	log.Info().Int64("sessions", purged).Msg("purged expired sessions")

	r, teardown, err := router.Config(url)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	path := url.Path
	if path == "" {
		path = "/"
	}
	router.AttachRoutes(r.Group(path))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
