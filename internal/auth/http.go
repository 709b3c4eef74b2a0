// Copyright (c) 2026 Kinodex. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/kinodex/kinodex/internal/platform/request"
	"github.com/kinodex/kinodex/internal/platform/respond"
	"github.com/kinodex/kinodex/internal/platform/validate"
)

// Handler implements authentication-related HTTP endpoints.
//
// # Architecture
//
// Handlers are the gatekeepers to the system. They own JSON request parsing,
// strict boundary validation, and response shaping via [respond] — and
// contain no business logic or database queries.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with account lifecycle routes.
//
// # Endpoints
//   - POST /register : Creates a new account.
//   - POST /login    : Authenticates and returns a token pair.
//   - POST /refresh  : Rotates a refresh token into a new token pair.
//   - POST /logout   : Revokes a refresh-token session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	return router
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// refreshRequest represents the JSON payload carrying a refresh token.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// register handles POST /users/register.
//
// # Returns
//   - HTTP 201 Created on success with the new account profile.
//   - HTTP 400 Bad Request if validation rules fail.
//   - HTTP 409 Conflict if the email is taken.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input credentialsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.Required("email", input.Email)
	validator.Email("email", input.Email)
	validator.MinLen("password", input.Password, MinPasswordLength)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, user)
}

// login handles POST /users/login.
//
// # Returns
//   - HTTP 200 OK on success with the token pair and account profile.
//   - HTTP 401 Unauthorized for bad credentials.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input credentialsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("email", input.Email)
	validator.Required("password", input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		// 401 without leaking whether the email or the password was wrong.
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionResponse(session))
}

// refresh handles POST /users/refresh.
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("refresh_token", input.RefreshToken)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.RefreshSession(request.Context(), input.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionResponse(session))
}

// logout handles POST /users/logout. Logout is idempotent: revoking an
// already-dead token still returns 204.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), input.RefreshToken); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// sessionResponse shapes a [LoginSession] for the wire.
func sessionResponse(session *LoginSession) map[string]any {
	return map[string]any{
		"access_token":             session.AccessToken,
		"refresh_token":            session.RefreshToken,
		"refresh_token_expires_at": session.RefreshTokenExpiresAt,
		"user":                     session.User,
	}
}
