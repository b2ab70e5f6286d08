package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/eldercare/internal/common"
	"github.com/dmitrijs2005/eldercare/internal/logging"
)

// Response messages. Clients match on some of these, so keep them stable.
const (
	msgInvalidJSON      = "invalid JSON"
	msgCredsRequired    = "email and password are required"
	msgEmailTaken       = "email already registered"
	msgUserNotFound     = "user not found"
	msgWrongPassword    = "wrong password"
	msgMissingToken     = "missing token"
	msgInvalidToken     = "invalid or expired token"
	msgInternal         = "internal error"
	msgNotFound         = "not found"
	msgMethodNotAllowed = "method not allowed"
	msgDBUnavailable    = "database unavailable"
)

var errEmptyBody = errors.New("empty request body")

// writeServiceError maps a service error onto a status and a client-safe
// message. Anything unrecognised is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, log logging.Logger, err error) {
	status, msg := statusFor(err)
	switch {
	case status == http.StatusInternalServerError:
		log.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	case common.IsAuthError(err):
		log.Debug(r.Context(), "authentication rejected", "path", r.URL.Path, "reason", msg)
	}
	JSONError(w, status, msg)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, msgCredsRequired
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict, msgEmailTaken
	case common.IsAuthError(err):
		return http.StatusUnauthorized, authMessage(err)
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, msgUserNotFound
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		return msgUserNotFound
	case errors.Is(err, common.ErrWrongPassword):
		return msgWrongPassword
	case errors.Is(err, common.ErrUnauthorized):
		return msgMissingToken
	}
	return msgInvalidToken
}
