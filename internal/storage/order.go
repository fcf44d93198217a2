package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/linemk/order-backend/internal/domain/models"
)

// OrderStorage описывает методы для работы с заказами.
type OrderStorage interface {
	// CreateOrder сохраняет новый заказ, id и created_at заполняются в переданной структуре.
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrdersByUserID возвращает все заказы пользователя в порядке вставки.
	GetOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Order, error)
}

// orderRepository — конкретная реализация OrderStorage.
// Позиции заказа лежат в колонке items типа JSONB.
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт новый репозиторий заказов.
func NewOrderRepository(db *sql.DB) OrderStorage {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Items == nil {
		order.Items = []json.RawMessage{}
	}
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	// lib/pq передаёт []byte как bytea, поэтому jsonb отправляем строкой
	query := `INSERT INTO orders (id, user_id, items, total)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`
	err = r.db.QueryRowContext(ctx, query, order.ID, order.UserID, string(items), order.Total).Scan(&order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (r *orderRepository) GetOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, items, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*models.Order, 0)
	for rows.Next() {
		order := &models.Order{}
		var items []byte
		if err := rows.Scan(&order.ID, &order.UserID, &items, &order.Total, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
