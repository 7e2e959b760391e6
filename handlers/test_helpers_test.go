package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"helio_platform_go/config"
	"helio_platform_go/db"
	"helio_platform_go/middleware"
	"helio_platform_go/models"
	"helio_platform_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	// Initialize Storage for tests if not already set
	if services.Storage == nil {
		services.Storage = services.NewLocalStorage(t.TempDir())
	}

	assert.NoError(t, db.Migrate(testDB))

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

// createTestUser inserts a user with the given role and an active session,
// and returns both
func createTestUser(t *testing.T, database *gorm.DB, username, role string) (*models.User, *models.Session) {
	hashed, err := services.HashPassword("password123")
	assert.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@test.com",
		Name:     "Test " + username,
		Password: hashed,
		Role:     role,
	}
	assert.NoError(t, database.Create(user).Error)

	session := &models.Session{
		UserID:    user.ID,
		Token:     "token-" + uuid.New().String(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	assert.NoError(t, database.Create(session).Error)

	return user, session
}

// authenticate wires a user and session into the request context the way
// RequireAuth would
func authenticate(c echo.Context, user *models.User, session *models.Session) {
	c.Set(middleware.ContextKeyUser, user)
	c.Set(middleware.ContextKeySession, session)
}

func stringToPtr(s string) *string {
	return &s
}
