package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/keepuphq/keepup/internal/handler/respond"
	"github.com/keepuphq/keepup/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Profile is the one unauthenticated read path: display fields plus PUBLIC
// goals only.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	profile, err := h.userService.Profile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("failed to load profile", "error", err, "user_id", userID)
		respond.Error(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	respond.JSON(w, http.StatusOK, profile)
}
