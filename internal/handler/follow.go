package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/keepuphq/keepup/internal/ctxkeys"
	"github.com/keepuphq/keepup/internal/handler/respond"
	"github.com/keepuphq/keepup/internal/service"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
	}
}

type followRequest struct {
	FollowingID string `json:"followingId"`
}

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FollowingID == "" {
		respond.Error(w, http.StatusBadRequest, "followingId is required")
		return
	}

	edge, err := h.followService.Follow(user.ID, req.FollowingID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			respond.Error(w, http.StatusBadRequest, "you cannot follow yourself")
		case errors.Is(err, service.ErrAlreadyFollowing):
			respond.Error(w, http.StatusBadRequest, "already following this user")
		default:
			slog.Error("failed to follow user", "error", err, "user_id", user.ID, "following_id", req.FollowingID)
			respond.Error(w, http.StatusInternalServerError, "failed to follow user")
		}
		return
	}

	respond.JSON(w, http.StatusCreated, edge)
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FollowingID == "" {
		respond.Error(w, http.StatusBadRequest, "followingId is required")
		return
	}

	err := h.followService.Unfollow(user.ID, req.FollowingID)
	if err != nil {
		slog.Error("failed to unfollow user", "error", err, "user_id", user.ID, "following_id", req.FollowingID)
		respond.Error(w, http.StatusInternalServerError, "failed to unfollow user")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *FollowHandler) Following(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respond.Error(w, http.StatusBadRequest, "userId is required")
		return
	}

	ids, err := h.followService.Following(userID)
	if err != nil {
		slog.Error("failed to list following", "error", err, "user_id", userID)
		respond.Error(w, http.StatusInternalServerError, "failed to list following")
		return
	}

	respond.JSON(w, http.StatusOK, edgeList("followingId", ids))
}

func (h *FollowHandler) Followers(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respond.Error(w, http.StatusBadRequest, "userId is required")
		return
	}

	ids, err := h.followService.Followers(userID)
	if err != nil {
		slog.Error("failed to list followers", "error", err, "user_id", userID)
		respond.Error(w, http.StatusInternalServerError, "failed to list followers")
		return
	}

	respond.JSON(w, http.StatusOK, edgeList("followerId", ids))
}

// edgeList renders counterpart IDs as a list of single-field records, the
// shape the follow listings have always used.
func edgeList(field string, ids []string) []map[string]string {
	list := make([]map[string]string, len(ids))
	for i, id := range ids {
		list[i] = map[string]string{field: id}
	}
	return list
}
