package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Env struct {
	Port   string
	AppEnv string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr string
	RedisPass string
	RedisDB   int

	JWTSecret string

	OpenAIAPIKey          string
	StableDiffusionAPIURL string
	StableDiffusionAPIKey string

	UploadDir string
}

// LoadEnv reads configuration from the environment, loading .env first when
// one is present.
func LoadEnv() (*Env, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	env := &Env{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "pixelforge"),
		DBPort:     getEnv("DB_PORT", "5432"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASSWORD", ""),

		JWTSecret: os.Getenv("JWT_SECRET"),

		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		StableDiffusionAPIURL: os.Getenv("STABLE_DIFFUSION_API_URL"),
		StableDiffusionAPIKey: os.Getenv("STABLE_DIFFUSION_API_KEY"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("REDIS_DB must be an integer")
	}
	env.RedisDB = redisDB

	if env.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return env, nil
}

// IsProduction reports whether the app runs in production mode. It drives the
// Secure flag on auth cookies.
func (e *Env) IsProduction() bool {
	return e.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
