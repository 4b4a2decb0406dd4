package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/codeforher/backend/internal/pkg/models"
)

// TokenType distinguishes access tokens from refresh tokens in claims
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// GenerateAccessToken issues a short-lived access token bound to a user id
func GenerateAccessToken(userID string, cfg models.JWTConfig) (string, int64, error) {
	ttl := time.Duration(cfg.ExpirationMinutes) * time.Minute
	return generate(userID, TokenTypeAccess, ttl, cfg)
}

// GenerateRefreshToken issues a longer-lived refresh token bound to a user id
func GenerateRefreshToken(userID string, cfg models.JWTConfig) (string, int64, error) {
	ttl := time.Duration(cfg.RefreshExpiryDays) * 24 * time.Hour
	return generate(userID, TokenTypeRefresh, ttl, cfg)
}

func generate(userID string, tokenType TokenType, ttl time.Duration, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(ttl).Unix()

	claims := jwt.MapClaims{
		"user_id":    userID,
		"token_type": string(tokenType),
		"exp":        expiresAt,
		"iss":        cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token of the expected type and returns the bound
// user id.
func ValidateToken(tokenString string, secret string, expected TokenType) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if tt, _ := claims["token_type"].(string); tt != string(expected) {
		return "", fmt.Errorf("unexpected token type %q", tt)
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", fmt.Errorf("missing user_id claim")
	}

	return userID, nil
}
