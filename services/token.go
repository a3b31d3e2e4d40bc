package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload; tokens only carry the user id.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies the access/refresh token pair.
type TokenService interface {
	GenerateAccessToken(userID uint) (string, error)
	GenerateRefreshToken(userID uint) (string, error)
	ParseToken(tokenString string) (*Claims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

type tokenService struct {
	secret        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenService(secret string, accessExpiry, refreshExpiry time.Duration) TokenService {
	if accessExpiry <= 0 {
		accessExpiry = AccessTokenTTL
	}
	if refreshExpiry <= 0 {
		refreshExpiry = RefreshTokenTTL
	}
	return &tokenService{
		secret:        secret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *tokenService) GenerateAccessToken(userID uint) (string, error) {
	return s.generateToken(userID, s.accessExpiry)
}

func (s *tokenService) GenerateRefreshToken(userID uint) (string, error) {
	return s.generateToken(userID, s.refreshExpiry)
}

func (s *tokenService) generateToken(userID uint, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *tokenService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func (s *tokenService) AccessTTL() time.Duration {
	return s.accessExpiry
}

func (s *tokenService) RefreshTTL() time.Duration {
	return s.refreshExpiry
}
