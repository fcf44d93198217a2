package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/linemk/order-backend/internal/domain/models"
	"github.com/linemk/order-backend/internal/lib/metrics"
	"github.com/linemk/order-backend/internal/storage"
	"github.com/shopspring/decimal"
)

// OrderService определяет операции с заказами текущего пользователя.
type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, items []json.RawMessage, total decimal.Decimal) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error)
}

type orderService struct {
	log       *slog.Logger
	orderRepo storage.OrderStorage
}

func NewOrderService(log *slog.Logger, orderRepo storage.OrderStorage) OrderService {
	return &orderService{
		log:       log,
		orderRepo: orderRepo,
	}
}

// CreateOrder сохраняет заказ от имени userID. Позиции и сумма не проверяются.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, items []json.RawMessage, total decimal.Decimal) (*models.Order, error) {
	const op = "service.OrderService.CreateOrder"
	logger := s.log.With(slog.String("op", op), slog.String("userID", userID.String()))

	order, err := s.orderRepo.CreateOrder(ctx, &models.Order{
		UserID: userID,
		Items:  items,
		Total:  total,
	})
	if err != nil {
		logger.Error("failed to create order", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordOrderCreated()
	logger.Info("order placed", slog.String("orderID", order.ID.String()), slog.String("total", order.Total.String()))
	return order, nil
}

// ListOrders возвращает все заказы пользователя.
func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	const op = "service.OrderService.ListOrders"
	logger := s.log.With(slog.String("op", op), slog.String("userID", userID.String()))

	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		logger.Error("failed to get orders", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Debug("orders loaded", slog.Int("count", len(orders)))
	return orders, nil
}
