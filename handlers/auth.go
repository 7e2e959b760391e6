package handlers

import (
	"net/http"

	"helio_platform_go/config"
	"helio_platform_go/db"
	"helio_platform_go/middleware"
	"helio_platform_go/models"
	"helio_platform_go/schemas"
	"helio_platform_go/services"

	"github.com/labstack/echo/v4"
)

// globalDummyHash is verified against on unknown-email logins so response
// timing does not reveal whether an account exists
var globalDummyHash = "$2a$10$X7.G.t8./.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t"

func init() {
	// Generate a real dummy hash at startup to ensure consistent timing
	hash, _ := services.HashPassword("dummy_password_for_timing_mitigation")
	if hash != "" {
		globalDummyHash = hash
	}
}

// RegisterHandler creates a new member account. The captcha is verified
// first, then username/email uniqueness, then the password is hashed.
func RegisterHandler(c echo.Context) error {
	var in schemas.RegisterInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	in.Normalize()
	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	if err := verifyCaptcha(c, in.CaptchaToken); err != nil {
		return respondError(c, err)
	}

	// Check uniqueness before attempting the insert so the caller gets a
	// precise conflict message
	var count int64
	if err := db.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", in.Username, in.Email).
		Count(&count).Error; err != nil {
		return respondError(c, err)
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Username or email is already taken"})
	}

	hashedPassword, err := services.HashPassword(in.Password)
	if err != nil {
		return respondError(c, err)
	}

	user := models.User{
		Username: in.Username,
		Email:    in.Email,
		Name:     in.Name,
		Image:    in.Image,
		Password: hashedPassword,
		Role:     models.RoleMember,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		// A concurrent registration may have won the unique index race
		return c.JSON(http.StatusConflict, map[string]string{"error": "Username or email is already taken"})
	}

	return c.JSON(http.StatusCreated, user)
}

// LoginHandler authenticates a user and opens a session
func LoginHandler(c echo.Context) error {
	var in schemas.LoginInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	in.Normalize()
	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	var user models.User
	if err := db.DB.Where("email = ?", in.Email).First(&user).Error; err != nil {
		// Timing attack mitigation: always run a bcrypt comparison
		services.VerifyPassword(globalDummyHash, in.Password)
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	if !services.VerifyPassword(user.Password, in.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	session, err := services.CreateSession(db.DB, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return respondError(c, err)
	}

	isProduction := false
	if cfg, ok := c.Get("config").(*config.Config); ok {
		isProduction = cfg.Environment == "production"
	}

	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(services.DefaultSessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, user)
}

// LogoutHandler closes the current session
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if err := services.DeleteSession(db.DB, cookie.Value); err != nil {
			c.Logger().Error("Failed to delete session:", err)
		}
	}

	middleware.ClearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// GetCurrentUserHandler returns the authenticated user
func GetCurrentUserHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.GetCurrentUser(c))
}
