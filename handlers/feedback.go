package handlers

import (
	"net/http"

	"helio_platform_go/db"
	"helio_platform_go/models"
	"helio_platform_go/schemas"

	"github.com/labstack/echo/v4"
)

// SubmitFeedbackHandler handles the feedback form for authenticated users
func SubmitFeedbackHandler(c echo.Context) error {
	var in schemas.FeedbackInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	in.Normalize()
	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	feedback := models.Feedback{
		Category:     in.Category,
		Satisfaction: in.Satisfaction,
		Usability:    in.Usability,
		Features:     in.Features,
		Improvements: in.Improvements,
		Recommend:    in.Recommend,
		Status:       models.StatusNew,
	}

	if err := db.DB.Create(&feedback).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, feedback)
}

// GetFeedbackHandler returns a paginated admin view of feedback
func GetFeedbackHandler(c echo.Context) error {
	page, limit := parsePagination(c)

	query := db.DB.Model(&models.Feedback{})
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

	var feedbacks []models.Feedback
	if err := query.Preload("RespondedBy").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&feedbacks).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, PagedResponse{
		Items:       feedbacks,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
	})
}

// UpdateFeedbackHandler applies an admin status/response mutation.
// Reapplying the current status is a no-op beyond the updated_at bump.
func UpdateFeedbackHandler(c echo.Context) error {
	id := c.Param("id")

	var in schemas.QueryUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	var feedback models.Feedback
	if err := db.DB.First(&feedback, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Feedback not found"})
	}

	updates := queryResponseUpdates(&in, currentAdminID(c))
	if len(updates) > 0 {
		if err := db.DB.Model(&feedback).Updates(updates).Error; err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, feedback)
}
