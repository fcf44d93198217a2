package app

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"github.com/linemk/order-backend/internal/config"
	"github.com/linemk/order-backend/internal/security"
	"github.com/linemk/order-backend/internal/service"
	"github.com/linemk/order-backend/internal/storage"
	"github.com/pkg/errors"
)

// App держит зависимости, создаваемые один раз при старте процесса.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sql.DB
	Tokens *security.TokenManager
}

// NewApp создаёт новый экземпляр App: подключается к БД и готовит менеджер токенов
func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	tokens, err := security.NewTokenManager(cfg.JWT.Secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token manager")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return &App{
		Config: cfg,
		Logger: log,
		DB:     db,
		Tokens: tokens,
	}, nil
}

// Services собирает сервисы поверх репозиториев Postgres.
func (a *App) Services() Services {
	userRepo := storage.NewUserRepository(a.DB)
	orderRepo := storage.NewOrderRepository(a.DB)

	return Services{
		Auth:   service.NewAuthService(a.Logger, userRepo, a.Tokens, a.Config.JWT.TokenTTL),
		Orders: service.NewOrderService(a.Logger, orderRepo),
	}
}

// Close освобождает ресурсы приложения.
func (a *App) Close() error {
	return a.DB.Close()
}
