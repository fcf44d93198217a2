package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/linemk/order-backend/internal/domain/models"
	"github.com/linemk/order-backend/internal/lib/api"
	"github.com/linemk/order-backend/internal/security/jwtmiddleware"
	"github.com/linemk/order-backend/internal/service"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest представляет входной JSON заказа.
// userId из тела запроса не читается: владелец всегда берётся из токена.
type CreateOrderRequest struct {
	Items []json.RawMessage `json:"items" validate:"required"`
	Total *decimal.Decimal  `json:"total" validate:"required"`
}

// CreateOrderResponse представляет ответ при успешном создании заказа.
type CreateOrderResponse struct {
	Message string        `json:"message"`
	Order   *models.Order `json:"order"`
}

// CreateOrderHandler обрабатывает запрос POST /api/orders.
func CreateOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateOrderHandler"
		logger := log.With(slog.String("op", op))

		// Извлекаем пользователя из контекста (установленного JWT middleware)
		identity, ok := jwtmiddleware.FromContext(r.Context())
		if !ok {
			logger.Error("identity not found in context")
			api.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateOrderRequest
		if err := api.DecodeJSON(w, r, &req); err != nil {
			logger.Warn("invalid request: decoding error", slog.Any("error", err))
			api.Error(w, http.StatusBadRequest, "Items and total required")
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Warn("invalid request: validation error", slog.Any("error", err))
			api.Error(w, http.StatusBadRequest, "Items and total required")
			return
		}

		order, err := orderService.CreateOrder(r.Context(), identity.UserID, req.Items, *req.Total)
		if err != nil {
			logger.Error("failed to create order", slog.Any("error", err))
			api.Error(w, http.StatusInternalServerError, "internal server error")
			return
		}

		resp := CreateOrderResponse{Message: "Order placed successfully", Order: order}
		if err := api.JSON(w, http.StatusOK, resp); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
		}
	}
}

// ListOrdersHandler обрабатывает запрос GET /api/orders и возвращает массив заказов пользователя.
func ListOrdersHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListOrdersHandler"
		logger := log.With(slog.String("op", op))

		identity, ok := jwtmiddleware.FromContext(r.Context())
		if !ok {
			logger.Error("identity not found in context")
			api.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		orders, err := orderService.ListOrders(r.Context(), identity.UserID)
		if err != nil {
			logger.Error("failed to list orders", slog.Any("error", err))
			api.Error(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if orders == nil {
			orders = []*models.Order{}
		}

		if err := api.JSON(w, http.StatusOK, orders); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
		}
	}
}
