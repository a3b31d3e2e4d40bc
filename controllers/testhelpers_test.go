package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/yeonwoo-kim-dev/pixelforge/controllers"
	"github.com/yeonwoo-kim-dev/pixelforge/database"
	"github.com/yeonwoo-kim-dev/pixelforge/models"
	"github.com/yeonwoo-kim-dev/pixelforge/routes"
	"github.com/yeonwoo-kim-dev/pixelforge/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret-key-at-least-32-chars-long"

type testServer struct {
	router    *gin.Engine
	db        *gorm.DB
	uploadDir string
}

// newTestServer wires the full route surface over an in-memory database and
// a miniredis instance. provider may be nil when a test never generates.
func newTestServer(t *testing.T, provider services.ImageProvider) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	mr := miniredis.RunT(t)
	redisClient := database.NewRedisClientFromConn(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	uploadDir := t.TempDir()

	tokenService := services.NewTokenService(testJWTSecret, services.AccessTokenTTL, services.RefreshTokenTTL)
	authService := services.NewAuthService(db, redisClient, tokenService)
	imageService := services.NewImageService(db, provider, nil, uploadDir)

	cookieHelper := controllers.NewCookieHelper(false)
	authController := controllers.NewAuthController(authService, tokenService, cookieHelper)
	imageController := controllers.NewImageController(imageService)
	uploadController := controllers.NewUploadController(uploadDir)

	router := gin.New()
	routes.SetupRoutes(router, authController, imageController, uploadController)

	return &testServer{router: router, db: db, uploadDir: uploadDir}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) register(t *testing.T, email, password, nickname string) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"email":    email,
		"password": password,
		"nickname": nickname,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}
}

func (ts *testServer) login(t *testing.T, email, password string) []*http.Cookie {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
