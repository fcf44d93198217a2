package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// total отдаётся клиенту числом, а не строкой
	decimal.MarshalJSONWithoutQuotes = true
}

// Order представляет заказ пользователя.
// Items хранятся как есть, без проверки структуры.
type Order struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"userId"`
	Items     []json.RawMessage `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	CreatedAt time.Time         `json:"createdAt"`
}
