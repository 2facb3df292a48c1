package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const accessTTLDefault = 24 * time.Hour

var (
	ErrMissingSecret = errors.New("JWT secret belum dikonfigurasi")
	ErrInvalidToken  = errors.New("token tidak valid atau sudah kadaluarsa")
)

// TokenClaims: identitas yang dibawa token.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

type jwtClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService gagal kalau secret kosong (kesalahan deployment).
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue menandatangani token HS256 berisi id/username/role + exp.
func (s *TokenService) Issue(c TokenClaims) (string, time.Time, error) {
	now := s.now().UTC()
	exp := now.Add(s.ttl)
	claims := jwtClaims{
		ID:       c.UserID.String(),
		Username: c.Username,
		Role:     c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tok, exp, nil
}

// Verify memeriksa signature, algoritma, dan exp.
func (s *TokenService) Verify(token string) (*TokenClaims, error) {
	claims := &jwtClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(s.now()) {
		return nil, ErrInvalidToken
	}
	id, err := uuid.Parse(strings.TrimSpace(claims.ID))
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &TokenClaims{UserID: id, Username: claims.Username, Role: claims.Role}, nil
}
