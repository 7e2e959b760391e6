package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"helio_platform_go/config"
	"helio_platform_go/db"
	"helio_platform_go/middleware"
	"helio_platform_go/models"
	"helio_platform_go/schemas"
	"helio_platform_go/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// PagedResponse is the envelope for every page-based admin query view
type PagedResponse struct {
	Items       interface{} `json:"items"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// parsePagination reads page/limit query params. Pages are 1-indexed; the
// limit is clamped to [1, 100] rather than rejected.
func parsePagination(c echo.Context) (page, limit int) {
	page = 1
	limit = defaultPageLimit

	if pageParam := c.QueryParam("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			page = p
		}
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil {
			limit = l
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// respondError translates schema and domain errors into HTTP responses.
// Every response body carries a message suitable for direct display.
func respondError(c echo.Context, err error) error {
	var fieldErrs schemas.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "Validation failed",
			"errors": fieldErrs,
		})
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrExternalService):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "An external service is unavailable, please try again"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong, please try again"})
	}
}

// notifyAdmins emails every admin about a newly submitted query entity.
// Notification failures never affect the triggering request.
func notifyAdmins(c echo.Context, queryKind, queryID, summary string) {
	cfg, ok := c.Get("config").(*config.Config)
	if !ok {
		return
	}

	var admins []models.User
	if err := db.DB.Where("role IN ?", []string{models.RoleAdmin, models.RoleTenantAdmin}).Find(&admins).Error; err != nil {
		c.Logger().Error("Failed to fetch admins for notification:", err)
		return
	}

	for _, admin := range admins {
		email := services.BuildQueryNotificationEmail(admin.Email, admin.Name, queryKind, queryID, summary)
		services.SendEmailAsync(cfg, email)
	}
}

// verifyCaptcha runs Turnstile verification for public submissions when a
// secret key is configured. Any verification error fails the request.
func verifyCaptcha(c echo.Context, token string) error {
	cfg, ok := c.Get("config").(*config.Config)
	if !ok || cfg.TurnstileSecretKey == "" {
		return nil
	}

	valid, err := services.VerifyTurnstileToken(token, cfg.TurnstileSecretKey, c.RealIP())
	if err != nil || !valid {
		c.Logger().Warnf("Turnstile verification failed: %v", err)
		return schemas.ValidationErrors{"captcha_token": "Captcha verification failed, please try again"}
	}
	return nil
}

// queryResponseUpdates builds the column updates for an admin status/response
// mutation. Absent fields stay untouched.
func queryResponseUpdates(in *schemas.QueryUpdateInput, adminID string) map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Response != nil {
		updates["response"] = *in.Response
		updates["responded_by_id"] = adminID
		updates["responded_at"] = time.Now()
	}
	return updates
}

// currentAdminID returns the id of the authenticated admin
func currentAdminID(c echo.Context) string {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return ""
	}
	return user.ID
}
