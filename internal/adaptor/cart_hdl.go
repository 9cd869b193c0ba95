package adaptor

import (
	"encoding/json"
	"net/http"

	"shopkart/internal/dto/request"
	"shopkart/internal/usecase"
	"shopkart/pkg/utils"

	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// GetCart handles GET /api/me/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	cart, err := h.service.GetCart(r.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to get cart", zap.Error(err), zap.String("user_id", user.ID.String()))
		utils.ResponseInternalError(w, "Server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{"cart": cart})
}

// ReplaceCart handles PUT /api/me/cart
func (h *CartHandler) ReplaceCart(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.ReplaceCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "cart must be an array")
		return
	}
	// A missing "cart" key and a non-array both fail the same way
	if req.Cart == nil {
		utils.ResponseBadRequest(w, "cart must be an array")
		return
	}

	cart, err := h.service.ReplaceCart(r.Context(), user.ID, *req.Cart)
	if err != nil {
		h.log.Error("Failed to replace cart", zap.Error(err), zap.String("user_id", user.ID.String()))
		utils.ResponseInternalError(w, "Server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{"cart": cart})
}
