//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, user.RoleProfessor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "professor", claims.Role)
}

func TestValidateRejections(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), user.RoleProfessor)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
