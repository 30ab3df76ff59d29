package authutils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"workorbit-backend/config"
	"workorbit-backend/models"
)

func TestGetToken(t *testing.T) {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 86400
	config.Conf = conf

	tokenString, err := GetToken("user-1", "kim@workorbit.com", models.UserRoleEmployee)
	require.Nil(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.Nil(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "user-1", claims["sub"])
	require.Equal(t, "kim@workorbit.com", claims["email"])
	require.Equal(t, "employee", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.Nil(t, err)
	require.InDelta(t, time.Now().Add(24*time.Hour).Unix(), exp.Unix(), 5)
}
