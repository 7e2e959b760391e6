package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"helio_platform_go/models"

	"github.com/stretchr/testify/assert"
)

func TestSubmitContactQueryHandler(t *testing.T) {
	t.Run("Valid submission is stored as NEW", func(t *testing.T) {
		database := setupTestDB(t)

		body := `{"name":"Jane Doe","organization":"Acme Corp","email":"jane@acme.com","phone":"+14155550100","inquiry_type":"SALES","message":"We would like a quote for 200 devices."}`
		_, c, rec := setupEcho(http.MethodPost, "/api/contact", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		err := SubmitContactQueryHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var query models.ContactQuery
		assert.NoError(t, database.First(&query).Error)
		assert.Equal(t, models.StatusNew, query.Status)
		assert.Equal(t, models.InquirySales, query.InquiryType)
	})

	t.Run("Unknown inquiry type fails validation", func(t *testing.T) {
		setupTestDB(t)

		body := `{"name":"Jane Doe","email":"jane@acme.com","inquiry_type":"BILLING","message":"Hello"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/contact", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		err := SubmitContactQueryHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Errors, "inquiry_type")
	})

	t.Run("Missing email fails validation", func(t *testing.T) {
		setupTestDB(t)

		body := `{"name":"Jane Doe","inquiry_type":"GENERAL","message":"Hello"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/contact", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		err := SubmitContactQueryHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetContactQueriesHandler(t *testing.T) {
	database := setupTestDB(t)
	for i := 0; i < 4; i++ {
		query := &models.ContactQuery{
			Name:        "Visitor",
			Email:       "visitor@test.com",
			InquiryType: models.InquiryGeneral,
			Message:     "Hello",
			Status:      models.StatusNew,
		}
		assert.NoError(t, database.Create(query).Error)
	}

	_, c, rec := setupEcho(http.MethodGet, "/api/admin/contact", nil)

	err := GetContactQueriesHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []models.ContactQuery `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 4)
}

func TestUpdateContactQueryHandler(t *testing.T) {
	database := setupTestDB(t)
	admin, session := createTestUser(t, database, "contactadmin", models.RoleTenantAdmin)

	query := &models.ContactQuery{
		Name:        "Visitor",
		Email:       "visitor@test.com",
		InquiryType: models.InquiryMedia,
		Message:     "Press question",
		Status:      models.StatusNew,
	}
	assert.NoError(t, database.Create(query).Error)

	body := `{"status":"IN_PROGRESS"}`
	_, c, rec := setupEcho(http.MethodPatch, "/api/admin/contact/"+query.ID, strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")
	c.SetParamNames("id")
	c.SetParamValues(query.ID)
	authenticate(c, admin, session)

	err := UpdateContactQueryHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, database.First(query, "id = ?", query.ID).Error)
	assert.Equal(t, models.StatusInProgress, query.Status)
	assert.Nil(t, query.RespondedByID)
}
