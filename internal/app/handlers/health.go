package handlers

import (
	"net/http"

	"github.com/linemk/order-backend/internal/lib/api"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// TestHandler — GET /api/test, проверка что бэкенд поднят.
func TestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = api.JSON(w, http.StatusOK, MessageResponse{Message: "Backend is working"})
	}
}
