// Package common holds request decoding and error mapping shared by the
// HTTP handlers.
package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/pkg/auth"
	"github.com/kboat10/babs10/pkg/utils"
	"github.com/kboat10/babs10/pkg/validate"
	"go.uber.org/zap"
)

// DecodeJSON reads and validates the request body into v. On failure it
// writes the response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

// UserID returns the authenticated identity. A user_id query parameter, if
// present, must name the same identity.
func UserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	if q := r.URL.Query().Get("user_id"); q != "" && q != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return "", false
	}
	return userID, true
}

// RespondWithServiceError maps domain error kinds to status codes.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
