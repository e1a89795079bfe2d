package utils

import (
	"errors"
	"time"

	"rentride/config"

	"github.com/golang-jwt/jwt"
)

var errInvalidToken = errors.New("invalid token")

func signingKey() []byte {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s)
	}
	// Development fallback only; production must set JWT_SECRET.
	return []byte("rentride-dev")
}

// GenerateToken signs an HS256 token carrying the renter ID as subject.
func GenerateToken(renterID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   renterID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})
	return token.SignedString(signingKey())
}

// ExtractIDFromToken verifies the token and returns its subject claim.
func ExtractIDFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingKey(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errInvalidToken
	}
	return sub, nil
}
