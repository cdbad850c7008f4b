package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"meno/internal/domain"
)

// tokenClaims is the signed payload: {id, email, role} plus exp/iat/jti.
type tokenClaims struct {
	jwt.RegisteredClaims
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenService mints and checks stateless session tokens. Nothing is stored
// server-side, so a token stays valid until it expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	Now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, Now: time.Now}
}

func (s *TokenService) Issue(c domain.Claims) (string, error) {
	now := s.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		ID:    c.ID,
		Email: c.Email,
		Role:  c.Role,
	})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the embedded claims without consulting the user store.
func (s *TokenService) Verify(raw string) (domain.Claims, error) {
	var tc tokenClaims
	tok, err := jwt.ParseWithClaims(raw, &tc, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.Now),
	)
	if err != nil || !tok.Valid {
		return domain.Claims{}, ErrInvalidToken
	}
	return domain.Claims{ID: tc.ID, Email: tc.Email, Role: tc.Role}, nil
}
