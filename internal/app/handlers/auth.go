package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/linemk/order-backend/internal/domain/models"
	"github.com/linemk/order-backend/internal/lib/api"
	"github.com/linemk/order-backend/internal/service"
)

// LoginRequest представляет структуру запроса для входа с тегами валидации
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

// LoginResponse возвращает пользователя и JWT-токен
type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

var validate = validator.New()

// LoginHandler – HTTP-обработчик POST /api/auth/login, вход и автоматическая регистрация
func LoginHandler(log *slog.Logger, authService service.AuthServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.LoginHandler"
		logger := log.With(slog.String("op", op))

		var req LoginRequest
		if err := api.DecodeJSON(w, r, &req); err != nil {
			logger.Warn("invalid request: decoding error", slog.Any("error", err))
			api.Error(w, http.StatusBadRequest, "Email & Name required")
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Warn("invalid request: validation error", slog.Any("error", err))
			api.Error(w, http.StatusBadRequest, "Email & Name required")
			return
		}

		user, token, err := authService.Login(r.Context(), req.Email, req.Name)
		if err != nil {
			logger.Error("login failed", slog.Any("error", err))
			api.Error(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if err := api.JSON(w, http.StatusOK, LoginResponse{User: user, Token: token}); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
		}
	}
}
