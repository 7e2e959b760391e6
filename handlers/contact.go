package handlers

import (
	"net/http"

	"helio_platform_go/db"
	"helio_platform_go/models"
	"helio_platform_go/schemas"

	"github.com/labstack/echo/v4"
)

// SubmitContactQueryHandler handles the public contact form
func SubmitContactQueryHandler(c echo.Context) error {
	var in schemas.ContactQueryInput
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

	query := models.ContactQuery{
		Name:         in.Name,
		Organization: in.Organization,
		Email:        in.Email,
		Phone:        in.Phone,
		InquiryType:  in.InquiryType,
		Message:      in.Message,
		Status:       models.StatusNew,
	}

	if err := db.DB.Create(&query).Error; err != nil {
		return respondError(c, err)
	}

	notifyAdmins(c, "contact query", query.ID, "From: "+query.Name+" <"+query.Email+">")

	return c.JSON(http.StatusCreated, query)
}

// GetContactQueriesHandler returns a paginated admin view of contact queries
func GetContactQueriesHandler(c echo.Context) error {
	page, limit := parsePagination(c)

	query := db.DB.Model(&models.ContactQuery{})
	if status := c.QueryParam("status"); status != "" {
		if !models.IsValidQueryStatus(status) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status filter"})
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return respondError(c, err)
	}

	var queries []models.ContactQuery
	if err := query.Preload("RespondedBy").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&queries).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, PagedResponse{
		Items:       queries,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
	})
}

// UpdateContactQueryHandler applies an admin status/response mutation
func UpdateContactQueryHandler(c echo.Context) error {
	id := c.Param("id")

	var in schemas.QueryUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	var query models.ContactQuery
	if err := db.DB.First(&query, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Contact query not found"})
	}

	updates := queryResponseUpdates(&in, currentAdminID(c))
	if len(updates) > 0 {
		if err := db.DB.Model(&query).Updates(updates).Error; err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, query)
}
