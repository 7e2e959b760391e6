package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"helio_platform_go/models"

	"github.com/stretchr/testify/assert"
)

func TestSearchTagsHandler(t *testing.T) {
	t.Run("Substring match with post counts", func(t *testing.T) {
		database := setupTestDB(t)
		user, _ := createTestUser(t, database, "tagger1", models.RoleMember)

		firmware := &models.Tag{Name: "firmware"}
		updates := &models.Tag{Name: "firmware-updates"}
		unrelated := &models.Tag{Name: "provisioning"}
		assert.NoError(t, database.Create(firmware).Error)
		assert.NoError(t, database.Create(updates).Error)
		assert.NoError(t, database.Create(unrelated).Error)

		post := seedPost(t, database, user.ID, "Firmware post", 1, false)
		assert.NoError(t, database.Create(&models.PostTag{PostID: post.ID, TagID: firmware.ID, TagName: firmware.Name}).Error)

		_, c, rec := setupEcho(http.MethodGet, "/api/tags/search?q=firmware", nil)
		assert.NoError(t, SearchTagsHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Items []models.Tag `json:"items"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, "firmware", resp.Items[0].Name)
		assert.Equal(t, int64(1), resp.Items[0].PostCount)
		assert.Equal(t, int64(0), resp.Items[1].PostCount)
	})

	t.Run("Query is normalized before matching", func(t *testing.T) {
		database := setupTestDB(t)
		assert.NoError(t, database.Create(&models.Tag{Name: "fleet-management"}).Error)

		_, c, rec := setupEcho(http.MethodGet, "/api/tags/search?q=%23Fleet_Management", nil)
		assert.NoError(t, SearchTagsHandler(c))

		var resp struct {
			Items []models.Tag `json:"items"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 1)
	})
}

func TestCreateTagHandler(t *testing.T) {
	t.Run("Name is normalized on create", func(t *testing.T) {
		database := setupTestDB(t)

		body := `{"name":"#Device_Health","is_official":true}`
		_, c, rec := setupEcho(http.MethodPost, "/api/admin/tags", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		assert.NoError(t, CreateTagHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var tag models.Tag
		assert.NoError(t, database.First(&tag).Error)
		assert.Equal(t, "device-health", tag.Name)
		assert.True(t, tag.IsOfficial)
	})

	t.Run("Duplicate name conflicts", func(t *testing.T) {
		database := setupTestDB(t)
		assert.NoError(t, database.Create(&models.Tag{Name: "alerts"}).Error)

		body := `{"name":"Alerts"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/admin/tags", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		assert.NoError(t, CreateTagHandler(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Name that normalizes to nothing is rejected", func(t *testing.T) {
		setupTestDB(t)

		body := `{"name":"###"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/admin/tags", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		assert.NoError(t, CreateTagHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateTagHandler(t *testing.T) {
	t.Run("Rename rewrites join snapshots", func(t *testing.T) {
		database := setupTestDB(t)
		user, _ := createTestUser(t, database, "tagadmin", models.RoleAdmin)

		tag := &models.Tag{Name: "old-name"}
		assert.NoError(t, database.Create(tag).Error)
		post := seedPost(t, database, user.ID, "Linked post", 1, false)
		assert.NoError(t, database.Create(&models.PostTag{PostID: post.ID, TagID: tag.ID, TagName: tag.Name}).Error)

		body := `{"name":"new-name"}`
		_, c, rec := setupEcho(http.MethodPatch, "/api/admin/tags/"+tag.ID, strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")
		c.SetParamNames("id")
		c.SetParamValues(tag.ID)

		assert.NoError(t, UpdateTagHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var join models.PostTag
		assert.NoError(t, database.Where("post_id = ?", post.ID).First(&join).Error)
		assert.Equal(t, "new-name", join.TagName)
	})

	t.Run("Rename onto an existing tag conflicts", func(t *testing.T) {
		database := setupTestDB(t)
		assert.NoError(t, database.Create(&models.Tag{Name: "first"}).Error)
		second := &models.Tag{Name: "second"}
		assert.NoError(t, database.Create(second).Error)

		body := `{"name":"first"}`
		_, c, rec := setupEcho(http.MethodPatch, "/api/admin/tags/"+second.ID, strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")
		c.SetParamNames("id")
		c.SetParamValues(second.ID)

		assert.NoError(t, UpdateTagHandler(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
