package handlers

import (
	"net/http"

	"helio_platform_go/db"
	"helio_platform_go/models"
	"helio_platform_go/schemas"

	"github.com/labstack/echo/v4"
)

// SubmitSupportRequestHandler handles the support request form
func SubmitSupportRequestHandler(c echo.Context) error {
	var in schemas.SupportRequestInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	in.Normalize()
	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	request := models.SupportRequest{
		Category:    in.Category,
		Subject:     in.Subject,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      models.StatusNew,
	}

	if err := db.DB.Create(&request).Error; err != nil {
		return respondError(c, err)
	}

	notifyAdmins(c, "support request", request.ID, "Subject: "+request.Subject+" (priority "+request.Priority+")")

	return c.JSON(http.StatusCreated, request)
}

// GetSupportRequestsHandler returns a paginated admin view of support requests
func GetSupportRequestsHandler(c echo.Context) error {
	page, limit := parsePagination(c)

	query := db.DB.Model(&models.SupportRequest{})
	if status := c.QueryParam("status"); status != "" {
		if !models.IsValidQueryStatus(status) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status filter"})
		}
		query = query.Where("status = ?", status)
	}
	if priority := c.QueryParam("priority"); priority != "" {
		if !models.IsValidPriority(priority) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid priority filter"})
		}
		query = query.Where("priority = ?", priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return respondError(c, err)
	}

	var requests []models.SupportRequest
	if err := query.Preload("RespondedBy").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&requests).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, PagedResponse{
		Items:       requests,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
	})
}

// UpdateSupportRequestHandler applies an admin status/response mutation
func UpdateSupportRequestHandler(c echo.Context) error {
	id := c.Param("id")

	var in schemas.QueryUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	var request models.SupportRequest
	if err := db.DB.First(&request, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Support request not found"})
	}

	updates := queryResponseUpdates(&in, currentAdminID(c))
	if len(updates) > 0 {
		if err := db.DB.Model(&request).Updates(updates).Error; err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, request)
}
