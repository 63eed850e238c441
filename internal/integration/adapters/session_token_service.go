package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

const tokenIssuer = "finanzas-personales"

// SessionClaims represents the claims carried by an unlock session token.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// sessionTokenService implements the adapter.TokenService interface with
// HS256-signed JWTs. There is a single local user, so the claims carry only
// a session id and expiry.
type sessionTokenService struct {
	secret   []byte
	duration time.Duration
}

// NewSessionTokenService creates a new session token service instance.
func NewSessionTokenService(secret string, duration time.Duration) adapter.TokenService {
	return &sessionTokenService{
		secret:   []byte(secret),
		duration: duration,
	}
}

// GenerateSessionToken issues a new signed session token.
func (s *sessionTokenService) GenerateSessionToken(ctx context.Context) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		SessionID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSessionToken verifies a session token's signature and expiry.
func (s *sessionTokenService) ValidateSessionToken(ctx context.Context, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired token",
			domainerror.ErrInvalidToken,
		)
	}
	if _, ok := token.Claims.(*SessionClaims); !ok || !token.Valid {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}
	return nil
}
