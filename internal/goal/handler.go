package goal

import (
	"context"
	"net/http"

	"github.com/redmonkez12/goals-api/internal/httputil"
	"github.com/redmonkez12/goals-api/internal/logging"
)

// UserIDFunc reads the authenticated user id placed in the context by the
// auth middleware.
type UserIDFunc func(ctx context.Context) (string, bool)

// Handler contains HTTP handlers for goal endpoints
type Handler struct {
	addGoal *AddGoal
	userID  UserIDFunc
}

func NewHandler(addGoal *AddGoal, userID UserIDFunc) *Handler {
	return &Handler{addGoal: addGoal, userID: userID}
}

// CreateGoalRequest represents the add-goal request body
type CreateGoalRequest struct {
	Text string `json:"text" example:"Run a marathon"`
}

// Create handles adding a goal for the authenticated user
// @Summary      Add goal
// @Description  Add a goal owned by the authenticated user
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateGoalRequest true "Goal"
// @Success      201 {object} map[string]string
// @Failure      400 {object} httputil.ErrorResponse "Invalid goal"
// @Failure      401 {object} httputil.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /goals [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ownerID, ok := h.userID(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req CreateGoalRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid add-goal request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidRequest, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"user_id": ownerID})

	if err := h.addGoal.Execute(r.Context(), CreateGoal{Text: req.Text}, ownerID); err != nil {
		logger.Warn("add goal failed", "error", err.Error())
		httputil.RespondAppError(w, r, err)
		return
	}

	logger.Info("goal added")
	httputil.RespondJSON(w, map[string]string{"message": "goal created"}, http.StatusCreated)
}
