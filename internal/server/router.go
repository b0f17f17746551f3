package server

import (
	"context"
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/admin"
	"resume-builder/internal/ai"
	"resume-builder/internal/ai/gemini"
	"resume-builder/internal/aicontent"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/users"
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
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var usersRepo users.Repo
	var resumesRepo resumes.Repo
	if sqlDB != nil {
		usersRepo = &users.PGRepo{DB: sqlDB}
		resumesRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		memUsers := users.NewMemoryRepo()
		memResumes := resumes.NewMemoryRepo()
		memResumes.LookupOwner = func(ctx context.Context, userID int64) (string, string, bool) {
			user, err := memUsers.GetByID(ctx, userID)
			if err != nil {
				return "", "", false
			}
			return user.FirstName, user.LastName, true
		}
		usersRepo = memUsers
		resumesRepo = memResumes
	}

	var aiClient ai.Client = ai.PlaceholderClient{}
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("gemini client unavailable, using fallback content: %v", err)
		} else {
			aiClient = client
		}
	} else {
		log.Printf("GEMINI_API_KEY not set, using fallback content")
	}

	usersSvc := users.NewService(usersRepo)
	resumesSvc := resumes.NewService(resumesRepo)
	contentSvc := aicontent.NewService(aiClient)
	adminSvc := admin.NewService(usersSvc, resumesSvc, cfg.AdminEmail, cfg.AdminPassword)
	healthSvc := health.NewService()

	usersHandler := users.NewHandler(usersSvc)
	resumesHandler := resumes.NewHandler(resumesSvc)
	contentHandler := aicontent.NewHandler(contentSvc)
	adminHandler := admin.NewHandler(adminSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	usersHandler.RegisterRoutes(api)
	adminHandler.RegisterPublicRoutes(api)

	authed := api.Group("", middleware.RequireUser())
	resumesHandler.RegisterRoutes(authed)
	contentHandler.RegisterRoutes(authed)

	adminOnly := api.Group("", middleware.RequireAdmin())
	adminHandler.RegisterRoutes(adminOnly)

	return r
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
