package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"helio_platform_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestGetQueryCountsHandler(t *testing.T) {
	database := setupTestDB(t)

	seedFeedback(t, database, models.StatusNew, 2)
	seedFeedback(t, database, models.StatusResolved, 1)
	assert.NoError(t, database.Create(&models.ContactQuery{
		Name: "Visitor", Email: "v@test.com", InquiryType: models.InquiryGeneral,
		Message: "Hi", Status: models.StatusNew,
	}).Error)

	_, c, rec := setupEcho(http.MethodGet, "/api/admin/queries/counts", nil)

	assert.NoError(t, GetQueryCountsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var counts map[string]QueryCounts
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.Equal(t, int64(3), counts["feedback"].Total)
	assert.Equal(t, int64(2), counts["feedback"].New)
	assert.Equal(t, int64(1), counts["contact"].Total)
	assert.Equal(t, int64(0), counts["support"].Total)
	assert.Equal(t, int64(0), counts["issues"].Total)
}

func TestExportQueriesHandler(t *testing.T) {
	t.Run("Feedback export opens as a workbook", func(t *testing.T) {
		database := setupTestDB(t)
		seedFeedback(t, database, models.StatusNew, 2)

		_, c, rec := setupEcho(http.MethodGet, "/api/admin/queries/export?type=feedback", nil)

		assert.NoError(t, ExportQueriesHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(`Content-Disposition`), "feedback_queries_")

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		assert.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Queries")
		assert.NoError(t, err)
		// Header plus one row per feedback entry
		assert.Len(t, rows, 3)
	})

	t.Run("Unknown export type is rejected", func(t *testing.T) {
		setupTestDB(t)

		_, c, rec := setupEcho(http.MethodGet, "/api/admin/queries/export?type=everything", nil)

		assert.NoError(t, ExportQueriesHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
