package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"atsmatch-backend/internal/analyses"
	"atsmatch-backend/internal/llm"
	"atsmatch-backend/internal/llm/gemini"
	"atsmatch-backend/internal/llm/openai"
	"atsmatch-backend/internal/shared/config"
	"atsmatch-backend/internal/shared/metrics"
	"atsmatch-backend/internal/shared/server/middleware"
	"atsmatch-backend/internal/shared/server/respond"
	"atsmatch-backend/internal/shared/storage/db"
	"atsmatch-backend/internal/usage"
	"atsmatch-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var userRepo users.Repo
	var usageRepo usage.Repo
	var analysisRepo analyses.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
		usageRepo = &usage.PGRepo{DB: sqlDB}
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
		usageRepo = usage.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
	}

	usageSvc := usage.NewService(usageRepo)
	analysisSvc := &analyses.Service{
		Repo:  analysisRepo,
		Users: userRepo,
		Usage: usageSvc,
		Engine: &analyses.Engine{
			LLM:     newLLMClient(cfg),
			Timeout: cfg.LLMTimeout,
		},
	}

	analysisHandler := analyses.NewHandler(analysisSvc)
	usageHandler := usage.NewHandler(usageSvc, analyses.UsageGateway{Repo: analysisRepo})
	userHandler := users.NewHandler(userRepo)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authed := api.Group("", middleware.Auth(cfg.JWTSecret))
	analysisHandler.RegisterRoutes(authed)
	usageHandler.RegisterRoutes(authed)
	userHandler.RegisterRoutes(authed)

	return r
}

// newLLMClient picks the configured provider. A misconfigured provider does
// not stop the server; analysis requests degrade to the fallback result.
func newLLMClient(cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "gemini":
		client, err := gemini.NewClient(context.Background(), os.Getenv("GEMINI_API_KEY"), cfg.LLMModel)
		if err != nil {
			log.Printf("gemini client init failed: %v", err)
			return llm.Unavailable{Reason: err.Error()}
		}
		return client
	default:
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			log.Printf("openai client init failed: %v", err)
			return llm.Unavailable{Reason: err.Error()}
		}
		return client
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
