package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/goals-api/internal/apperr"
	"github.com/redmonkez12/goals-api/internal/logging"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRespondAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   ErrorResponse
	}{
		{
			name:       "invalid user",
			err:        apperr.InvalidUser("name required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrorResponse{Error: "name required", Code: "invalid_user"},
		},
		{
			name:       "invalid goal",
			err:        apperr.InvalidGoal("text required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrorResponse{Error: "text required", Code: "invalid_goal"},
		},
		{
			name:       "not found",
			err:        apperr.NotFound("User not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   ErrorResponse{Error: "User not found", Code: "not_found"},
		},
		{
			name:       "conflict",
			err:        apperr.EmailAlreadyTaken(),
			wantStatus: http.StatusConflict,
			wantBody:   ErrorResponse{Error: "User e-mail is already registered and must be unique", Code: "conflict"},
		},
		{
			name:       "mismatch",
			err:        apperr.PasswordNotMatch(),
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrorResponse{Error: "Password is not a match to the password hash", Code: "mismatch"},
		},
		{
			name:       "unclassified",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   ErrorResponse{Error: "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req = req.WithContext(logging.WithLogger(req.Context(), logging.Nop()))

			RespondAppError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Text string `json:"text"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"text":"NEW GOAL TEXT"}`},
		{name: "empty", body: ``, wantErr: "request body is empty"},
		{name: "malformed", body: `{"text":`, wantErr: "invalid request body"},
		{name: "unknown field", body: `{"txt":"x"}`, wantErr: "invalid request body"},
		{name: "two objects", body: `{"text":"a"}{"text":"b"}`, wantErr: "single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/goals", strings.NewReader(tt.body))
			var dst payload

			err := DecodeJSON(req, &dst)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "NEW GOAL TEXT", dst.Text)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
