package security_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/linemk/order-backend/internal/domain/models"
	"github.com/linemk/order-backend/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, secret string) *security.TokenManager {
	t.Helper()
	m, err := security.NewTokenManager(secret)
	require.NoError(t, err)
	return m
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := security.NewTokenManager("")
	assert.Error(t, err)
}

func TestNewToken_VerifyRoundTrip(t *testing.T) {
	m := newManager(t, "testsecret")
	user := &models.User{ID: uuid.New(), Email: "a@x.com", Name: "A"}

	token, err := m.NewToken(user, 24*time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerify_Expired(t *testing.T) {
	m := newManager(t, "testsecret")
	user := &models.User{ID: uuid.New(), Email: "a@x.com"}

	token, err := m.NewToken(user, -time.Minute)
	assert.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "a@x.com"}
	token, err := newManager(t, "other").NewToken(user, time.Hour)
	assert.NoError(t, err)

	_, err = newManager(t, "testsecret").Verify(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestVerify_Tampered(t *testing.T) {
	m := newManager(t, "testsecret")
	token, err := m.NewToken(&models.User{ID: uuid.New(), Email: "a@x.com"}, time.Hour)
	assert.NoError(t, err)

	// подменяем payload, подпись остаётся старой
	parts := strings.Split(token, ".")
	other, err := m.NewToken(&models.User{ID: uuid.New(), Email: "b@x.com"}, time.Hour)
	assert.NoError(t, err)
	parts[1] = strings.Split(other, ".")[1]

	_, err = m.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	_, err := newManager(t, "testsecret").Verify("invalid.token.value")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestVerify_NoExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    uuid.NewString(),
		"email": "a@x.com",
	}).SignedString([]byte("testsecret"))
	assert.NoError(t, err)

	_, err = newManager(t, "testsecret").Verify(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestVerify_MissingID(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("testsecret"))
	assert.NoError(t, err)

	_, err = newManager(t, "testsecret").Verify(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = newManager(t, "testsecret").Verify(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
