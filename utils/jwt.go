package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken signs a token carrying the user's id. The token
// lives inside the session cookie, so its lifetime is the session lifetime.
func GenerateSessionToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": float64(userID),
		"exp":    time.Now().Add(time.Hour * 72).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("SESSION_SECRET")))
}

// ParseSessionToken validates the cookie token and returns the user id.
func ParseSessionToken(tokenString string) (uint, error) {
	secret := []byte(os.Getenv("SESSION_SECRET"))
	if len(secret) == 0 {
		return 0, errors.New("SESSION_SECRET not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	id, ok := claims["userId"].(float64)
	if !ok || id <= 0 {
		return 0, errors.New("userId claim missing")
	}
	return uint(id), nil
}
