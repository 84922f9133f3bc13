package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/auth"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server"
	"resume-builder-backend/internal/shared/storage/db"
	"resume-builder-backend/internal/shared/telemetry"
	"resume-builder-backend/internal/users"
)

// App holds the wired dependency graph. Tests build one with an empty
// DATABASE_URL to get in-memory repositories behind the real router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Tokens         *auth.Service
	UsersRepo      users.Repo
	ResumesRepo    resumes.Repo
	UsersService   *users.Service
	ResumesService *resumes.Service
	UsersHandler   *users.Handler
	ResumesHandler *resumes.Handler
}

// Build wires configuration through storage, services and handlers into a
// ready-to-serve router.
func Build(cfg config.Config) (*App, error) {
	tokens, err := auth.NewService(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	var usersRepo users.Repo
	var resumesRepo resumes.Repo
	if sqlDB != nil {
		usersRepo = &users.PGRepo{DB: sqlDB}
		resumesRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		usersRepo = users.NewMemoryRepo()
		resumesRepo = resumes.NewMemoryRepo()
	}

	app := &App{
		Config:         cfg,
		DB:             sqlDB,
		Tokens:         tokens,
		UsersRepo:      usersRepo,
		ResumesRepo:    resumesRepo,
		UsersService:   users.NewService(usersRepo, tokens),
		ResumesService: resumes.NewService(resumesRepo),
	}
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		Tokens:         tokens,
		UsersHandler:   app.UsersHandler,
		ResumesHandler: app.ResumesHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if config.IsDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory", map[string]any{
				"reason": "DATABASE_URL empty; using in-memory repositories",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}
