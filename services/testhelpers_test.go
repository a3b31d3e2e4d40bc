package services

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/yeonwoo-kim-dev/pixelforge/database"
	"github.com/yeonwoo-kim-dev/pixelforge/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testJWTSecret = "test-secret-key-at-least-32-chars-long"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// unique shared-cache DSN so the pool sees one database per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.LoginAttempt{}, &models.GeneratedImage{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func newTestRedis(t *testing.T) *database.RedisClient {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return database.NewRedisClientFromConn(client)
}

func createTestUser(t *testing.T, db *gorm.DB, email, password, nickname string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        email,
		Nickname:     nickname,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return &user
}
