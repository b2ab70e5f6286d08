package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/eldercare/internal/logging"
	"github.com/dmitrijs2005/eldercare/internal/server/models"
)

// UserService is the auth surface the handlers need.
type UserService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	WhoAmI(ctx context.Context, token string) (*models.Profile, error)
}

// HealthChecker reports the result of a trivial database query.
type HealthChecker interface {
	Check(ctx context.Context) (int, error)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type meResponse struct {
	User *models.Profile `json:"user"`
}

type healthResponse struct {
	OK    bool   `json:"ok"`
	DB    int    `json:"db,omitempty"`
	Error string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	users  UserService
	health HealthChecker
	log    logging.Logger
}

func NewHandler(users UserService, health HealthChecker, log logging.Logger) *Handler {
	return &Handler{users: users, health: health, log: log}
}

func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	n, err := h.health.Check(r.Context())
	if err != nil {
		h.log.Error(r.Context(), "healthcheck failed", "error", err)
		JSON(w, http.StatusInternalServerError, healthResponse{OK: false, Error: msgDBUnavailable})
		return
	}
	JSON(w, http.StatusOK, healthResponse{OK: true, DB: n})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.users.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	h.log.Info(r.Context(), "user registered")
	JSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		return
	}

	token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	JSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	token, _ := TokenFromContext(r.Context())

	p, err := h.users.WhoAmI(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	JSON(w, http.StatusOK, meResponse{User: p})
}
