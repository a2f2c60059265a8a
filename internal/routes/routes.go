package routes

import (
	"net/http"
	"time"

	"github.com/keepuphq/keepup/internal/app"
	"github.com/keepuphq/keepup/internal/handler"
	"github.com/keepuphq/keepup/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(time.Now())
	auth := handler.NewAuthHandler(a.AuthService)
	goal := handler.NewGoalHandler(a.GoalService, a.ProgressService)
	follow := handler.NewFollowHandler(a.FollowService)
	user := handler.NewUserHandler(a.UserService)

	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /users/{id}", user.Profile)

	// Auth (rate limited)
	rateLimiter := middleware.NewRateLimiter(5, 10)
	mux.HandleFunc("POST /auth/signup", rateLimiter.Limit(auth.Signup))
	mux.HandleFunc("POST /auth/login", rateLimiter.Limit(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Goals
	mux.HandleFunc("POST /goals/create", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /goals/list", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /goals/edit", middleware.RequireAuth(goal.Edit))
	mux.HandleFunc("POST /goals/delete", middleware.RequireAuth(goal.Delete))
	mux.HandleFunc("POST /goals/complete", middleware.RequireAuth(goal.Complete))

	// Follow edges
	mux.HandleFunc("POST /follow/follow", middleware.RequireAuth(follow.Follow))
	mux.HandleFunc("POST /follow/unfollow", middleware.RequireAuth(follow.Unfollow))
	mux.HandleFunc("GET /follow/{id}/following", middleware.RequireAuth(follow.Following))
	mux.HandleFunc("GET /follow/{id}/followers", middleware.RequireAuth(follow.Followers))

	// Global middleware: session resolution runs on every request so handlers
	// only ever see an already-resolved identity
	authMiddleware := middleware.AuthMiddleware(a.AuthService, a.UserService)
	wrapped := authMiddleware(mux)
	wrapped = middleware.CORS(a.Cfg.CORSOrigins, wrapped)
	return middleware.RequestLogging(wrapped)
}
