package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"shopkart/internal/dto/request"
	"shopkart/internal/usecase"
	"shopkart/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// ListOrders handles GET /api/me/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	orders, err := h.service.ListOrders(r.Context(), user.ID)
	if err != nil {
		h.handleServiceError(w, err, "list orders")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// GetOrder handles GET /api/me/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	code := chi.URLParam(r, "id")
	if code == "" {
		utils.ResponseBadRequest(w, "Order id is required")
		return
	}

	order, err := h.service.GetOrder(r.Context(), user.ID, code)
	if err != nil {
		h.handleServiceError(w, err, "get order")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{"order": order})
}

// PlaceOrder handles POST /api/me/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}
	if req.Order == nil {
		utils.ResponseBadRequest(w, "Missing order")
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), user, req.Order)
	if err != nil {
		h.handleServiceError(w, err, "place order")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"order": order,
	})
}

func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Order not found")

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}
