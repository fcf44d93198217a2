package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/linemk/order-backend/internal/domain/models"
	"github.com/linemk/order-backend/internal/lib/metrics"
	"github.com/linemk/order-backend/internal/storage"
)

// TokenIssuer выпускает токен сессии для пользователя.
type TokenIssuer interface {
	NewToken(user *models.User, ttl time.Duration) (string, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, email, name string) (*models.User, string, error)
}

type AuthService struct {
	log      *slog.Logger
	userRepo storage.UserStorage
	tokens   TokenIssuer
	tokenTTL time.Duration
}

func NewAuthService(log *slog.Logger, userRepo storage.UserStorage, tokens TokenIssuer, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		log:      log,
		userRepo: userRepo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// Login осуществляет вход по email и имени.
// Если пользователя с таким email нет, он создаётся (auto signup). Существующий
// пользователь возвращается без изменений, даже если имя в запросе другое.
// Пароля нет: знания email достаточно, чтобы войти под этим пользователем.
func (a *AuthService) Login(ctx context.Context, email, name string) (*models.User, string, error) {
	const op = "service.AuthService.Login"
	logger := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)
	logger.Info("checking user")

	result := metrics.LoginExisting
	user, err := a.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrUserNotFound) {
		logger.Info("user not found, creating new user")
		result = metrics.LoginCreated
		user, err = a.createUser(ctx, email, name)
		if errors.Is(err, storage.ErrUserExists) {
			// параллельный вход с тем же email успел создать пользователя
			logger.Info("user created concurrently, reloading")
			result = metrics.LoginExisting
			user, err = a.userRepo.GetUserByEmail(ctx, email)
		}
	}
	if err != nil {
		logger.Error("failed to resolve user", slog.Any("error", err))
		return nil, "", fmt.Errorf("%s: failed to resolve user: %w", op, err)
	}

	token, err := a.tokens.NewToken(user, a.tokenTTL)
	if err != nil {
		logger.Error("failed to generate token", slog.Any("error", err))
		return nil, "", fmt.Errorf("%s: failed to generate token: %w", op, err)
	}

	metrics.RecordLogin(result)
	logger.Info("user logged in successfully", slog.String("userID", user.ID.String()))
	return user, token, nil
}

func (a *AuthService) createUser(ctx context.Context, email, name string) (*models.User, error) {
	return a.userRepo.CreateUser(ctx, &models.User{
		Email: email,
		Name:  name,
	})
}
