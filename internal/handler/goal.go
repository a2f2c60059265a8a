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

type GoalHandler struct {
	goalService     *service.GoalService
	progressService *service.ProgressService
}

func NewGoalHandler(goalService *service.GoalService, progressService *service.ProgressService) *GoalHandler {
	return &GoalHandler{
		goalService:     goalService,
		progressService: progressService,
	}
}

type goalRequest struct {
	GoalID      string  `json:"goalId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Frequency   string  `json:"frequency"`
	Visibility  string  `json:"visibility"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.goalService.Create(user.Email, service.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		Visibility:  req.Visibility,
	})
	if err != nil {
		if isGoalValidation(err) {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "failed to create goal")
		return
	}

	respond.JSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.Email)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "failed to load goals")
		return
	}

	respond.JSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.GoalID == "" {
		respond.Error(w, http.StatusBadRequest, "goalId is required")
		return
	}

	goal, err := h.goalService.Update(user.Email, req.GoalID, service.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		Visibility:  req.Visibility,
	})
	if err != nil {
		if isGoalValidation(err) {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, service.ErrGoalNotFound) {
			respond.Error(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to update goal", "error", err, "user_id", user.ID, "goal_id", req.GoalID)
		respond.Error(w, http.StatusInternalServerError, "failed to update goal")
		return
	}

	respond.JSON(w, http.StatusOK, goal)
}

type goalIDRequest struct {
	GoalID string `json:"goalId"`
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.GoalID == "" {
		respond.Error(w, http.StatusBadRequest, "goalId is required")
		return
	}

	err := h.goalService.Delete(user.Email, req.GoalID)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			respond.Error(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to delete goal", "error", err, "user_id", user.ID, "goal_id", req.GoalID)
		respond.Error(w, http.StatusInternalServerError, "failed to delete goal")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *GoalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.GoalID == "" {
		respond.Error(w, http.StatusBadRequest, "goalId is required")
		return
	}

	progress, err := h.progressService.Complete(user.Email, req.GoalID)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			respond.Error(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to complete goal", "error", err, "user_id", user.ID, "goal_id", req.GoalID)
		respond.Error(w, http.StatusInternalServerError, "failed to complete goal")
		return
	}

	respond.JSON(w, http.StatusCreated, progress)
}

func isGoalValidation(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrInvalidFrequency) ||
		errors.Is(err, service.ErrInvalidVisibility)
}
