package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"shopkart/internal/data/entity"
	"shopkart/internal/dto/request"
	"shopkart/internal/dto/response"
	"shopkart/internal/usecase"
	"shopkart/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
		log:     log,
	}
}

// InitiateSignup handles POST /api/auth/signup/initiate
func (h *AuthHandler) InitiateSignup(w http.ResponseWriter, r *http.Request) {
	var req request.InitiateSignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	email, err := h.service.InitiateSignup(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "initiate signup")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"email": email,
	})
}

// VerifySignup handles POST /api/auth/signup/verify
func (h *AuthHandler) VerifySignup(w http.ResponseWriter, r *http.Request) {
	var req request.VerifySignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.service.VerifySignup(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify signup")
		return
	}

	// Verified signup starts a session exactly like a fresh login
	if !h.startSession(w, user) {
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{
		"user": response.UserToResponse(user),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	if !h.startSession(w, user) {
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{
		"user": response.UserToResponse(user),
	})
}

// Logout handles POST /api/auth/logout. There is no server-side session
// state to revoke; clearing the cookie with matching attributes is the whole
// operation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearSessionCookie(w, h.config.JWT, h.config.Cookie)
	utils.ResponseJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// startSession signs a token for the user and attaches the cookie. Reports
// its own failure response.
func (h *AuthHandler) startSession(w http.ResponseWriter, user *entity.User) bool {
	token, err := utils.SignSession(user.ID.String(), h.config.JWT)
	if err != nil {
		h.log.Error("Failed to sign session token",
			zap.Error(err),
			zap.String("user_id", user.ID.String()))
		utils.ResponseInternalError(w, "Server error")
		return false
	}

	utils.SetSessionCookie(w, token, h.config.JWT, h.config.Cookie)
	return true
}

// handleServiceError maps service errors onto the HTTP taxonomy
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already registered"):
		h.log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, "Already registered")

	case strings.Contains(errMsg, "invalid credentials"):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	case strings.Contains(errMsg, "no pending sign-up"):
		h.log.Warn(operation+" failed - no pending signup", zap.Error(err))
		utils.ResponseBadRequest(w, "No pending sign-up")

	case strings.Contains(errMsg, "invalid OTP"):
		h.log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid OTP")

	case strings.Contains(errMsg, "OTP expired"):
		h.log.Warn(operation+" failed - expired OTP", zap.Error(err))
		utils.ResponseBadRequest(w, "OTP expired")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}
