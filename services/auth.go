package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/yeonwoo-kim-dev/pixelforge/apperrors"
	"github.com/yeonwoo-kim-dev/pixelforge/database"
	"github.com/yeonwoo-kim-dev/pixelforge/models"
	"github.com/yeonwoo-kim-dev/pixelforge/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// AuthService orchestrates registration, login, token issuance and refresh.
type AuthService struct {
	db     *gorm.DB
	redis  *database.RedisClient
	tokens TokenService
}

func NewAuthService(db *gorm.DB, redis *database.RedisClient, tokens TokenService) *AuthService {
	return &AuthService{
		db:     db,
		redis:  redis,
		tokens: tokens,
	}
}

// Register validates uniqueness of email and nickname, hashes the password
// and creates the user. The database unique constraints stay the source of
// truth: a duplicate insert racing past the pre-checks still maps to 409.
func (s *AuthService) Register(email, password, nickname string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	nickname = strings.TrimSpace(nickname)

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("This email is already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Database error")
	}

	if err := s.db.Where("nickname = ?", nickname).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("This nickname is already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Database error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to process password")
	}

	user := models.User{
		Email:        email,
		Nickname:     nickname,
		PasswordHash: string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("This email or nickname is already in use")
		}
		return nil, apperrors.Internal("Failed to create user")
	}

	return &user, nil
}

// Login verifies the credentials and returns the user. A wrong password is
// tagged INVALID_PASSWORD so the caller can record a login attempt.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.BadRequest("No account exists with this email")
		}
		return nil, apperrors.Internal("Database error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.WithCode("Password does not match", 400, apperrors.CodeInvalidPassword)
	}

	return &user, nil
}

// RecordLoginAttempt writes a failed-login audit row. Best effort: a failed
// write is logged and never blocks the login error response.
func (s *AuthService) RecordLoginAttempt(userID uint, ipAddress, userAgent string) {
	attempt := models.LoginAttempt{
		UserID:    userID,
		FailedAt:  time.Now(),
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Location:  utils.GetIPLocation(ipAddress),
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		log.Printf("failed to record login attempt for user %d: %v", userID, err)
	}
}

// FindUserByEmail is used by the login route to resolve the audited user when
// the password check fails.
func (s *AuthService) FindUserByEmail(email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.BadRequest("No account exists with this email")
		}
		return nil, apperrors.Internal("Database error")
	}
	return &user, nil
}

func (s *AuthService) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithCode("User not found", 404, apperrors.CodeUserNotFound)
		}
		return nil, apperrors.Internal("Database error")
	}
	return &user, nil
}

// IssueTokens mints the access/refresh pair and stores the refresh token in
// Redis so logout can actually revoke it.
func (s *AuthService) IssueTokens(ctx context.Context, userID uint) (accessToken, refreshToken string, err error) {
	accessToken, err = s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return "", "", apperrors.Internal("Failed to issue token")
	}

	refreshToken, err = s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return "", "", apperrors.Internal("Failed to issue token")
	}

	if err := s.redis.SetRefreshToken(ctx, userID, refreshToken, s.tokens.RefreshTTL()); err != nil {
		return "", "", apperrors.Internal("Failed to store refresh token")
	}

	return accessToken, refreshToken, nil
}

// RefreshAccessToken validates the refresh token against its signature and
// the Redis copy, then mints a new access token for the user.
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ParseToken(refreshToken)
	if err != nil {
		return "", apperrors.WithCode("Invalid refresh token", 401, apperrors.CodeInvalidRefreshToken)
	}

	stored, err := s.redis.GetRefreshToken(ctx, claims.UserID)
	if err != nil || stored != refreshToken {
		return "", apperrors.WithCode("Invalid refresh token", 401, apperrors.CodeInvalidRefreshToken)
	}

	user, err := s.FindUserByID(claims.UserID)
	if err != nil {
		return "", err
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return "", apperrors.Internal("Failed to issue token")
	}

	return accessToken, nil
}

// Logout revokes the refresh token. Cookie clearing happens at the route
// layer; an unparseable token is simply ignored.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	claims, err := s.tokens.ParseToken(refreshToken)
	if err != nil {
		return
	}
	if err := s.redis.DeleteRefreshToken(ctx, claims.UserID); err != nil {
		log.Printf("failed to revoke refresh token for user %d: %v", claims.UserID, err)
	}
}

// VerifyAccessToken decodes an access token into the user id it was minted
// for.
func (s *AuthService) VerifyAccessToken(token string) (uint, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return 0, apperrors.WithCode("Invalid token", 401, apperrors.CodeInvalidToken)
	}
	return claims.UserID, nil
}
