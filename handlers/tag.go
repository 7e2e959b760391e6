package handlers

import (
	"net/http"

	"helio_platform_go/db"
	"helio_platform_go/models"
	"helio_platform_go/schemas"

	"github.com/labstack/echo/v4"
)

// SearchTagsHandler returns tags whose normalized name contains the query
// string, each annotated with its post count
func SearchTagsHandler(c echo.Context) error {
	q := schemas.NormalizeTagName(c.QueryParam("q"))

	query := db.DB.Model(&models.Tag{}).Order("name ASC")
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	var tags []models.Tag
	if err := query.Limit(50).Find(&tags).Error; err != nil {
		return respondError(c, err)
	}

	if len(tags) > 0 {
		ids := make([]string, len(tags))
		for i, tag := range tags {
			ids[i] = tag.ID
		}

		var counts []struct {
			TagID string
			Count int64
		}
		if err := db.DB.Model(&models.PostTag{}).
			Select("tag_id, COUNT(*) AS count").
			Where("tag_id IN ?", ids).
			Group("tag_id").
			Find(&counts).Error; err != nil {
			return respondError(c, err)
		}

		byID := make(map[string]int64, len(counts))
		for _, row := range counts {
			byID[row.TagID] = row.Count
		}
		for i := range tags {
			tags[i].PostCount = byID[tags[i].ID]
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"items": tags})
}

// CreateTagHandler creates a tag. Admin only; duplicate names conflict.
func CreateTagHandler(c echo.Context) error {
	var in schemas.TagCreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}

	var existing int64
	db.DB.Model(&models.Tag{}).Where("name = ?", in.Name).Count(&existing)
	if existing > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "A tag with this name already exists"})
	}

	tag := models.Tag{Name: in.Name, IsOfficial: in.IsOfficial}
	if err := db.DB.Create(&tag).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, tag)
}

// UpdateTagHandler partially updates a tag. Renaming rewrites the name
// snapshot on existing post links.
func UpdateTagHandler(c echo.Context) error {
	id := c.Param("id")

	var tag models.Tag
	if err := db.DB.First(&tag, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Tag not found"})
	}

	var in schemas.TagUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}

	updates := map[string]interface{}{}
	if in.Name != nil && *in.Name != tag.Name {
		var existing int64
		db.DB.Model(&models.Tag{}).Where("name = ? AND id != ?", *in.Name, tag.ID).Count(&existing)
		if existing > 0 {
			return c.JSON(http.StatusConflict, map[string]string{"error": "A tag with this name already exists"})
		}
		updates["name"] = *in.Name
	}
	if in.IsOfficial != nil {
		updates["is_official"] = *in.IsOfficial
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&tag).Updates(updates).Error; err != nil {
			return respondError(c, err)
		}
		if name, ok := updates["name"]; ok {
			if err := db.DB.Model(&models.PostTag{}).Where("tag_id = ?", tag.ID).
				Update("tag_name", name).Error; err != nil {
				return respondError(c, err)
			}
		}
	}

	return c.JSON(http.StatusOK, tag)
}
