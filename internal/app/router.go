package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/linemk/order-backend/internal/app/handlers"
	"github.com/linemk/order-backend/internal/lib/cors"
	"github.com/linemk/order-backend/internal/lib/logger/handlers/urllog"
	"github.com/linemk/order-backend/internal/lib/metrics"
	"github.com/linemk/order-backend/internal/security/jwtmiddleware"
	"github.com/linemk/order-backend/internal/service"
)

// Services — бизнес-логика, которой пользуются HTTP-обработчики.
type Services struct {
	Auth   service.AuthServiceInterface
	Orders service.OrderService
}

// NewRouter собирает chi-роутер со всеми эндпоинтами.
func NewRouter(log *slog.Logger, svc Services, verifier jwtmiddleware.TokenVerifier, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()
	// настройка middleware
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.New(allowedOrigins))
	router.Use(metrics.InstrumentHandler)

	router.Get("/api/test", handlers.TestHandler())
	router.Handle("/metrics", metrics.Handler())

	// эндпоинт для входа / автоматической регистрации
	router.Post("/api/auth/login", handlers.LoginHandler(log, svc.Auth))

	router.Group(func(r chi.Router) {
		r.Use(jwtmiddleware.NewJWTMiddleware(log, verifier))

		r.Post("/api/orders", handlers.CreateOrderHandler(log, svc.Orders))
		r.Get("/api/orders", handlers.ListOrdersHandler(log, svc.Orders))
	})

	return router
}
