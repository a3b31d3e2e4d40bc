package config

import "testing"

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if env.Port != "3000" {
		t.Errorf("Port = %q, want default 3000", env.Port)
	}
	if env.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q, want default uploads", env.UploadDir)
	}
	if env.IsProduction() {
		t.Error("IsProduction() = true for default APP_ENV")
	}
}

func TestLoadEnv_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadEnv(); err == nil {
		t.Error("LoadEnv() succeeded without JWT_SECRET")
	}
}

func TestLoadEnv_Production(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if !env.IsProduction() {
		t.Error("IsProduction() = false with APP_ENV=production")
	}
}

func TestLoadEnv_BadRedisDB(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_DB", "nope")

	if _, err := LoadEnv(); err == nil {
		t.Error("LoadEnv() accepted a non-numeric REDIS_DB")
	}
}
