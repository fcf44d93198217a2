package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linemk/order-backend/internal/app"
	"github.com/linemk/order-backend/internal/config"
	"github.com/linemk/order-backend/internal/lib/logger"
	pkgerrors "github.com/pkg/errors"
)

func main() {
	// загрузка конфигурации
	cfg := config.MustLoad()

	// инициализация логгера, зависит от настройки окружения
	log := logger.SetupLogger(cfg.Env)
	log.Info("starting app", slog.String("env", cfg.Env))

	// все зависимости создаются здесь и передаются вниз явно
	application, err := app.NewApp(context.Background(), log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(pkgerrors.Wrap(err, "failed to initialize app"))
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("failed to close app", slog.Any("error", err))
		}
	}()

	router := app.NewRouter(log, application.Services(), application.Tokens, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(log, srv, stop); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
	}
}

// serve запускает сервер и ждёт сигнала остановки либо ошибки ListenAndServe.
// Ошибка запуска (например, занятый порт) возвращается сразу, а не теряется в логе.
func serve(log *slog.Logger, srv *http.Server, stop <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return pkgerrors.Wrap(err, "listen and serve")
		}
		return nil
	case stopSign := <-stop:
		log.Info("received shutdown signal", slog.String("signal", stopSign.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return pkgerrors.Wrap(err, "server shutdown failed")
	}
	log.Info("server gracefully stopped")
	return nil
}
