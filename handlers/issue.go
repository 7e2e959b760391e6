package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"helio_platform_go/db"
	"helio_platform_go/middleware"
	"helio_platform_go/models"
	"helio_platform_go/schemas"
	"helio_platform_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// MaxAttachmentSize limits each uploaded attachment (10MB)
	MaxAttachmentSize = 10 * 1024 * 1024
	// MaxAttachmentCount limits the attachments per issue
	MaxAttachmentCount = 10
)

var allowedAttachmentExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".txt": true,
	".log": true, ".jpg": true, ".jpeg": true, ".png": true,
}

// draftPatch is the body of a wizard draft update
type draftPatch struct {
	Step   int                    `json:"step"`
	Fields map[string]interface{} `json:"fields"`
}

// GetIssueDraftHandler returns the current wizard draft for the session
func GetIssueDraftHandler(c echo.Context) error {
	session := middleware.GetCurrentSession(c)
	return c.JSON(http.StatusOK, services.IssueDrafts.Get(session.Token))
}

// UpdateIssueDraftHandler merges partial form data into the wizard draft
// and moves it to the given step
func UpdateIssueDraftHandler(c echo.Context) error {
	session := middleware.GetCurrentSession(c)

	var patch draftPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if patch.Step < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Step must not be negative"})
	}

	draft := services.IssueDrafts.Get(session.Token).MergeFormData(patch.Step, patch.Fields)
	services.IssueDrafts.Put(session.Token, draft)

	return c.JSON(http.StatusOK, draft)
}

// ResetIssueDraftHandler restores the wizard draft to its initial state
func ResetIssueDraftHandler(c echo.Context) error {
	session := middleware.GetCurrentSession(c)
	services.IssueDrafts.Delete(session.Token)
	return c.NoContent(http.StatusNoContent)
}

// UploadIssueAttachmentsHandler uploads wizard attachments through the
// storage gateway and records their keys on the draft, in order
func UploadIssueAttachmentsHandler(c echo.Context) error {
	session := middleware.GetCurrentSession(c)

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid multipart form"})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No files provided"})
	}

	draft := services.IssueDrafts.Get(session.Token)
	if len(draft.Files)+len(files) > MaxAttachmentCount {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("At most %d attachments are allowed per issue", MaxAttachmentCount),
		})
	}

	keys := append([]string(nil), draft.Files...)
	for _, fileHeader := range files {
		if fileHeader.Size > MaxAttachmentSize {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "File size exceeds maximum allowed size of 10MB"})
		}
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !allowedAttachmentExtensions[ext] {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "File type not allowed. Accepted formats: PDF, DOC, DOCX, TXT, LOG, JPG, PNG"})
		}

		src, err := fileHeader.Open()
		if err != nil {
			return respondError(c, err)
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key, err := services.UploadAttachment(c.Request().Context(), src, fileHeader.Filename, contentType, fileHeader.Size)
		src.Close()
		if err != nil {
			return respondError(c, err)
		}
		keys = append(keys, key)
	}

	draft = draft.WithFiles(keys)
	services.IssueDrafts.Put(session.Token, draft)

	return c.JSON(http.StatusOK, draft)
}

// SubmitIssueHandler validates the accumulated wizard draft as a technical
// issue submission, persists it and clears the draft
func SubmitIssueHandler(c echo.Context) error {
	session := middleware.GetCurrentSession(c)

	draft := services.IssueDrafts.Get(session.Token)
	if draft.IsSubmitting {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Submission already in progress"})
	}
	services.IssueDrafts.Put(session.Token, draft.WithSubmitting(true))

	// Project the draft onto the submission schema; only domain fields
	// survive the projection
	payload, err := json.Marshal(draft.FormData())
	if err != nil {
		services.IssueDrafts.Put(session.Token, draft.WithSubmitting(false))
		return respondError(c, err)
	}

	var in schemas.TechnicalIssueInput
	if err := json.Unmarshal(payload, &in); err != nil {
		services.IssueDrafts.Put(session.Token, draft.WithSubmitting(false))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Draft contains malformed fields"})
	}

	in.Normalize()
	if err := schemas.Check(&in); err != nil {
		services.IssueDrafts.Put(session.Token, draft.WithSubmitting(false))
		return respondError(c, err)
	}

	issue := models.TechnicalIssue{
		DeviceID:         in.DeviceID,
		IssueType:        in.IssueType,
		Severity:         in.Severity,
		Title:            in.Title,
		Description:      in.Description,
		StepsToReproduce: in.StepsToReproduce,
		ExpectedBehavior: in.ExpectedBehavior,
		Attachments:      in.Attachments,
		Status:           models.StatusNew,
	}

	if err := db.DB.Create(&issue).Error; err != nil {
		services.IssueDrafts.Put(session.Token, draft.WithSubmitting(false))
		return respondError(c, err)
	}

	// Submission consumed the draft
	services.IssueDrafts.Delete(session.Token)

	notifyAdmins(c, "technical issue", issue.ID, "Severity: "+issue.Severity+" - "+issue.Title)

	return c.JSON(http.StatusCreated, issue)
}

// GetTechnicalIssuesHandler returns a paginated admin view of issues
func GetTechnicalIssuesHandler(c echo.Context) error {
	page, limit := parsePagination(c)

	query := db.DB.Model(&models.TechnicalIssue{})
	if status := c.QueryParam("status"); status != "" {
		if !models.IsValidQueryStatus(status) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status filter"})
		}
		query = query.Where("status = ?", status)
	}
	if severity := c.QueryParam("severity"); severity != "" {
		if !models.IsValidSeverity(severity) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid severity filter"})
		}
		query = query.Where("severity = ?", severity)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return respondError(c, err)
	}

	var issues []models.TechnicalIssue
	if err := query.Preload("RespondedBy").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&issues).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, PagedResponse{
		Items:       issues,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
	})
}

// UpdateTechnicalIssueHandler applies an admin status/response mutation
func UpdateTechnicalIssueHandler(c echo.Context) error {
	id := c.Param("id")

	var in schemas.QueryUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	var issue models.TechnicalIssue
	if err := db.DB.First(&issue, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Technical issue not found"})
	}

	updates := queryResponseUpdates(&in, currentAdminID(c))
	if len(updates) > 0 {
		if err := db.DB.Model(&issue).Updates(updates).Error; err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, issue)
}
