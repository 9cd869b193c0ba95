package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"shopkart/internal/dto/request"
	"shopkart/internal/dto/response"
	"shopkart/internal/usecase"
	"shopkart/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Session handles GET /api/session, behind the soft guard. Anonymous callers
// get a normal 200 with user null - this endpoint never fails.
func (h *UserHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{
		"user": response.UserToResponse(user),
	})
}

// Me handles GET /api/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{
		"user": response.UserToResponse(user),
	})
}

// UpdateProfile handles PATCH /api/me/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), user, &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{
		"user": response.UserToResponse(updated),
	})
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}
