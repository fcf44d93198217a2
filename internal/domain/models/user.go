package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя, созданного при первом входе
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"` // задаётся при первом входе и больше не меняется
	CreatedAt time.Time `json:"createdAt"`
}
