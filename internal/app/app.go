package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/keepuphq/keepup/internal/config"
	"github.com/keepuphq/keepup/internal/db"
	"github.com/keepuphq/keepup/internal/repository"
	"github.com/keepuphq/keepup/internal/service"
)

// App holds every constructed dependency. The DB handle is created once at
// startup and injected into the repositories; nothing reaches for it as a
// global.
type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	UserService     *service.UserService
	GoalService     *service.GoalService
	ProgressService *service.ProgressService
	FollowService   *service.FollowService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	progressRepository := repository.NewProgressRepository(database)
	followerRepository := repository.NewFollowerRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository, goalRepository)
	goalService := service.NewGoalService(goalRepository, progressRepository, userRepository)
	progressService := service.NewProgressService(progressRepository, goalRepository)
	followService := service.NewFollowService(followerRepository)

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		UserService:     userService,
		GoalService:     goalService,
		ProgressService: progressService,
		FollowService:   followService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
