package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"helio_platform_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Exportable query types
const (
	ExportContact  = "contact"
	ExportFeedback = "feedback"
	ExportSupport  = "support"
	ExportIssues   = "issues"
)

// IsValidExportType reports whether t names an exportable query type
func IsValidExportType(t string) bool {
	switch t {
	case ExportContact, ExportFeedback, ExportSupport, ExportIssues:
		return true
	}
	return false
}

// GenerateQueryExport builds an xlsx workbook with every row of the given
// query type, newest first
func GenerateQueryExport(dbConn *gorm.DB, queryType string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	var header []string
	var rows [][]interface{}

	switch queryType {
	case ExportContact:
		header = []string{"ID", "Created", "Name", "Organization", "Email", "Phone", "Inquiry Type", "Message", "Status", "Response"}
		var queries []models.ContactQuery
		if err := dbConn.Order("created_at desc").Find(&queries).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch contact queries: %w", err)
		}
		for _, q := range queries {
			rows = append(rows, []interface{}{q.ID, formatExportTime(q.CreatedAt), q.Name, q.Organization, q.Email, q.Phone, q.InquiryType, q.Message, q.Status, derefOrEmpty(q.Response)})
		}
	case ExportFeedback:
		header = []string{"ID", "Created", "Category", "Satisfaction", "Usability", "Features", "Improvements", "Recommend", "Status", "Response"}
		var feedbacks []models.Feedback
		if err := dbConn.Order("created_at desc").Find(&feedbacks).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch feedback: %w", err)
		}
		for _, fb := range feedbacks {
			rows = append(rows, []interface{}{fb.ID, formatExportTime(fb.CreatedAt), fb.Category, fb.Satisfaction, fb.Usability, strings.Join(fb.Features, ", "), fb.Improvements, fb.Recommend, fb.Status, derefOrEmpty(fb.Response)})
		}
	case ExportSupport:
		header = []string{"ID", "Created", "Category", "Subject", "Description", "Priority", "Status", "Response"}
		var requests []models.SupportRequest
		if err := dbConn.Order("created_at desc").Find(&requests).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch support requests: %w", err)
		}
		for _, r := range requests {
			rows = append(rows, []interface{}{r.ID, formatExportTime(r.CreatedAt), r.Category, r.Subject, r.Description, r.Priority, r.Status, derefOrEmpty(r.Response)})
		}
	case ExportIssues:
		header = []string{"ID", "Created", "Device", "Type", "Severity", "Title", "Description", "Attachments", "Status", "Response"}
		var issues []models.TechnicalIssue
		if err := dbConn.Order("created_at desc").Find(&issues).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch technical issues: %w", err)
		}
		for _, i := range issues {
			rows = append(rows, []interface{}{i.ID, formatExportTime(i.CreatedAt), derefOrEmpty(i.DeviceID), i.IssueType, i.Severity, i.Title, i.Description, strings.Join(i.Attachments, ", "), i.Status, derefOrEmpty(i.Response)})
		}
	default:
		return nil, fmt.Errorf("unknown export type: %s", queryType)
	}

	sheet := "Queries"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for r, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func formatExportTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
