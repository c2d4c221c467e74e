package auth

import (
	"net/http"

	"github.com/redmonkez12/goals-api/internal/httputil"
	"github.com/redmonkez12/goals-api/internal/logging"
	"github.com/redmonkez12/goals-api/internal/user"
)

// Handler contains HTTP handlers for the user endpoints
type Handler struct {
	signUp *SignUpUser
	signIn *SignInUser
}

func NewHandler(signUp *SignUpUser, signIn *SignInUser) *Handler {
	return &Handler{signUp: signUp, signIn: signIn}
}

// SignUpRequest represents the sign-up request body
type SignUpRequest struct {
	Name     string `json:"name" example:"John Doe"`
	Email    string `json:"email" example:"john@doe.com"`
	Password string `json:"password" example:"1234"`
}

// SignInRequest represents the sign-in request body
type SignInRequest struct {
	Email    string `json:"email" example:"john@doe.com"`
	Password string `json:"password" example:"1234"`
}

// MeResponse identifies the authenticated user
type MeResponse struct {
	ID string `json:"id"`
}

// SignUp handles user registration
// @Summary      Sign up
// @Description  Create a new user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body SignUpRequest true "New account"
// @Success      201 {object} map[string]string
// @Failure      400 {object} httputil.ErrorResponse "Invalid request or validation error"
// @Failure      409 {object} httputil.ErrorResponse "Email already registered"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /users/signup [post]
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SignUpRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid sign-up request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidRequest, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	err := h.signUp.Execute(r.Context(), user.CreateUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Warn("sign-up failed", "error", err.Error())
		httputil.RespondAppError(w, r, err)
		return
	}

	logger.Info("user signed up")
	httputil.RespondJSON(w, map[string]string{"message": "user created"}, http.StatusCreated)
}

// SignIn handles user login
// @Summary      Sign in
// @Description  Exchange credentials for a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Credentials"
// @Success      200 {object} SignedUser
// @Failure      400 {object} httputil.ErrorResponse "Invalid request or validation error"
// @Failure      401 {object} httputil.ErrorResponse "Password does not match"
// @Failure      404 {object} httputil.ErrorResponse "Unknown email"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /users/signin [post]
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SignInRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid sign-in request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidRequest, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	signed, err := h.signIn.Execute(r.Context(), SignInCredentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Warn("sign-in failed", "error", err.Error())
		httputil.RespondAppError(w, r, err)
		return
	}

	logger.Info("user signed in", "user_id", signed.ID)
	httputil.RespondJSON(w, signed, http.StatusOK)
}

// Me returns the authenticated user's id
// @Summary      Current user
// @Description  Verify the bearer token and that its user still exists
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} MeResponse
// @Failure      401 {object} httputil.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} httputil.ErrorResponse "User no longer exists"
// @Router       /users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}
	httputil.RespondJSON(w, MeResponse{ID: userID}, http.StatusOK)
}
