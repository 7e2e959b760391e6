package handlers

import (
	"fmt"
	"net/http"
	"time"

	"helio_platform_go/db"
	"helio_platform_go/models"
	"helio_platform_go/services"

	"github.com/labstack/echo/v4"
)

// QueryCounts holds the per-type totals used for dashboard badges
type QueryCounts struct {
	Total int64 `json:"total"`
	New   int64 `json:"new"`
}

// GetQueryCountsHandler returns aggregate counts per query type
func GetQueryCountsHandler(c echo.Context) error {
	counts := map[string]QueryCounts{}

	tables := map[string]interface{}{
		"contact":  &models.ContactQuery{},
		"feedback": &models.Feedback{},
		"support":  &models.SupportRequest{},
		"issues":   &models.TechnicalIssue{},
	}

	for name, model := range tables {
		var entry QueryCounts
		if err := db.DB.Model(model).Count(&entry.Total).Error; err != nil {
			return respondError(c, err)
		}
		if err := db.DB.Model(model).Where("status = ?", models.StatusNew).Count(&entry.New).Error; err != nil {
			return respondError(c, err)
		}
		counts[name] = entry
	}

	return c.JSON(http.StatusOK, counts)
}

// ExportQueriesHandler streams an xlsx export of one query type
func ExportQueriesHandler(c echo.Context) error {
	queryType := c.QueryParam("type")
	if !services.IsValidExportType(queryType) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid export type. Must be one of: contact, feedback, support, issues"})
	}

	buf, err := services.GenerateQueryExport(db.DB, queryType)
	if err != nil {
		return respondError(c, err)
	}

	filename := fmt.Sprintf("%s_queries_%s.xlsx", queryType, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
