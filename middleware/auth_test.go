package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"helio_platform_go/db"
	"helio_platform_go/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMiddlewareTestDB(t *testing.T) *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open("file:mem_mw_"+uuid.New().String()+"?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, testDB.AutoMigrate(&models.User{}, &models.Session{}))
	db.DB = testDB
	return testDB
}

func seedSession(t *testing.T, database *gorm.DB, role string, expiresAt time.Time) *models.Session {
	user := &models.User{
		Username: "u" + uuid.New().String()[:8],
		Email:    uuid.New().String() + "@test.com",
		Name:     "Test User",
		Password: "hash",
		Role:     role,
	}
	assert.NoError(t, database.Create(user).Error)

	session := &models.Session{
		UserID:    user.ID,
		Token:     "token-" + uuid.New().String(),
		ExpiresAt: expiresAt,
	}
	assert.NoError(t, database.Create(session).Error)
	return session
}

func runChain(token string, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}

	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireAuth(t *testing.T) {
	t.Run("Missing cookie", func(t *testing.T) {
		setupMiddlewareTestDB(t)
		rec := runChain("", RequireAuth())
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Unknown token", func(t *testing.T) {
		setupMiddlewareTestDB(t)
		rec := runChain("no-such-token", RequireAuth())
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Expired session", func(t *testing.T) {
		database := setupMiddlewareTestDB(t)
		session := seedSession(t, database, models.RoleMember, time.Now().Add(-time.Minute))

		rec := runChain(session.Token, RequireAuth())
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid session passes through", func(t *testing.T) {
		database := setupMiddlewareTestDB(t)
		session := seedSession(t, database, models.RoleMember, time.Now().Add(time.Hour))

		rec := runChain(session.Token, RequireAuth())
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("Member is forbidden", func(t *testing.T) {
		database := setupMiddlewareTestDB(t)
		session := seedSession(t, database, models.RoleMember, time.Now().Add(time.Hour))

		rec := runChain(session.Token, RequireAuth(), RequireAdmin())
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin passes", func(t *testing.T) {
		database := setupMiddlewareTestDB(t)
		session := seedSession(t, database, models.RoleAdmin, time.Now().Add(time.Hour))

		rec := runChain(session.Token, RequireAuth(), RequireAdmin())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Tenant admin passes", func(t *testing.T) {
		database := setupMiddlewareTestDB(t)
		session := seedSession(t, database, models.RoleTenantAdmin, time.Now().Add(time.Hour))

		rec := runChain(session.Token, RequireAuth(), RequireAdmin())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("No user in context", func(t *testing.T) {
		setupMiddlewareTestDB(t)
		rec := runChain("", RequireAdmin())
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
