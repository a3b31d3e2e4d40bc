package database

import (
	"fmt"

	"github.com/yeonwoo-kim-dev/pixelforge/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresClient(host, user, password, dbname, port string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", host, user, password, dbname, port)

	// TranslateError maps unique-constraint violations to gorm.ErrDuplicatedKey
	// so the auth service can answer 409 from the constraint itself.
	pgClient, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return pgClient, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.LoginAttempt{},
		&models.GeneratedImage{},
	)
}
