package handlers

import (
	"net/http"
	"strconv"

	"helio_platform_go/db"
	"helio_platform_go/middleware"
	"helio_platform_go/models"
	"helio_platform_go/schemas"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// postContentPolicy strips unsafe markup from user-authored post content
var postContentPolicy = bluemonday.UGCPolicy()

// PostListResponse is the envelope for cursor-paginated post listings
type PostListResponse struct {
	Items      []models.Post `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// CreatePostHandler creates a post for the authenticated user
func CreatePostHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	var in schemas.PostCreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}

	// Only admins may publish official posts
	isOfficial := in.IsOfficial && user.IsAdmin()

	post := models.Post{
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    postContentPolicy.Sanitize(in.Content),
		IsOfficial: isOfficial,
		UserID:     user.ID,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		if err := setPostTags(tx, &post, in.Tags); err != nil {
			return err
		}
		return setRelatedPosts(tx, &post, in.RelatedIDs)
	})
	if err != nil {
		return respondError(c, err)
	}

	loaded, err := loadPost(post.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, loaded)
}

// UpdatePostHandler partially updates a post. Only the owner or an admin may
// update; nil fields are left untouched.
func UpdatePostHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	id := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Post not found"})
	}

	if post.UserID != user.ID && !user.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "Access denied")
	}

	var in schemas.PostUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Excerpt != nil {
		updates["excerpt"] = *in.Excerpt
	}
	if in.Content != nil {
		updates["content"] = postContentPolicy.Sanitize(*in.Content)
	}
	if in.IsOfficial != nil && user.IsAdmin() {
		updates["is_official"] = *in.IsOfficial
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&post).Updates(updates).Error; err != nil {
				return err
			}
		}
		if in.Tags != nil {
			if err := setPostTags(tx, &post, *in.Tags); err != nil {
				return err
			}
		}
		if in.RelatedIDs != nil {
			if err := setRelatedPosts(tx, &post, *in.RelatedIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	loaded, err := loadPost(post.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, loaded)
}

// GetPostHandler returns a single post with its tags and related posts
func GetPostHandler(c echo.Context) error {
	id := c.Param("id")

	var post models.Post
	if err := db.DB.Preload("User").Preload("Tags").Preload("Related").
		First(&post, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Post not found"})
	}

	return c.JSON(http.StatusOK, post)
}

// ListPostsHandler returns posts with cursor pagination, optional tag and
// official-only filters, and latest/popular/official ordering. A stale or
// unknown cursor yields an empty page, not an error.
func ListPostsHandler(c echo.Context) error {
	limit := defaultPageLimit
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil {
			limit = l
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	order := c.QueryParam("order")
	if order == "" {
		order = models.OrderLatest
	}
	if !models.IsValidPostOrder(order) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order. Must be one of: latest, popular, official"})
	}

	query := db.DB.Model(&models.Post{})

	if tag := c.QueryParam("tag"); tag != "" {
		name := schemas.NormalizeTagName(tag)
		query = query.Select("posts.*").
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_name = ?", name)
	}
	if c.QueryParam("official") == "true" {
		query = query.Where("posts.is_official = ?", true)
	}

	// Resolve the cursor row; an unknown id means the caller's view is
	// stale and the page is simply over
	if cursorID := c.QueryParam("cursor"); cursorID != "" {
		var cursor models.Post
		if err := db.DB.First(&cursor, "id = ?", cursorID).Error; err != nil {
			return c.JSON(http.StatusOK, PostListResponse{Items: []models.Post{}})
		}
		query = applyCursor(query, order, &cursor)
	}

	switch order {
	case models.OrderPopular:
		query = query.Order("posts.view_count DESC, posts.like_count DESC, posts.id DESC")
	case models.OrderOfficial:
		query = query.Order("posts.is_official DESC, posts.published_at DESC, posts.id DESC")
	default:
		query = query.Order("posts.published_at DESC, posts.id DESC")
	}

	var posts []models.Post
	if err := query.Preload("User").Preload("Tags").Limit(limit).Find(&posts).Error; err != nil {
		return respondError(c, err)
	}

	resp := PostListResponse{Items: posts}
	if len(posts) == limit {
		resp.NextCursor = posts[len(posts)-1].ID
	}
	return c.JSON(http.StatusOK, resp)
}

// applyCursor restricts the listing to rows strictly after the cursor row in
// the given ordering
func applyCursor(query *gorm.DB, order string, cursor *models.Post) *gorm.DB {
	switch order {
	case models.OrderPopular:
		return query.Where(
			"(posts.view_count < ?) OR (posts.view_count = ? AND posts.like_count < ?) OR (posts.view_count = ? AND posts.like_count = ? AND posts.id < ?)",
			cursor.ViewCount, cursor.ViewCount, cursor.LikeCount, cursor.ViewCount, cursor.LikeCount, cursor.ID,
		)
	case models.OrderOfficial:
		return query.Where(
			"(posts.is_official < ?) OR (posts.is_official = ? AND posts.published_at < ?) OR (posts.is_official = ? AND posts.published_at = ? AND posts.id < ?)",
			cursor.IsOfficial, cursor.IsOfficial, cursor.PublishedAt, cursor.IsOfficial, cursor.PublishedAt, cursor.ID,
		)
	default:
		return query.Where(
			"(posts.published_at < ?) OR (posts.published_at = ? AND posts.id < ?)",
			cursor.PublishedAt, cursor.PublishedAt, cursor.ID,
		)
	}
}

// setPostTags replaces the post's tag set, creating missing tags and
// snapshotting the tag name on each join row
func setPostTags(tx *gorm.DB, post *models.Post, names []string) error {
	if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostTag{}).Error; err != nil {
		return err
	}

	seen := map[string]bool{}
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		var tag models.Tag
		if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			tag = models.Tag{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		}

		join := models.PostTag{PostID: post.ID, TagID: tag.ID, TagName: tag.Name}
		if err := tx.Create(&join).Error; err != nil {
			return err
		}
	}
	return nil
}

// setRelatedPosts replaces the post's related-post links. The relation is
// directed; ids that do not resolve to a post are skipped.
func setRelatedPosts(tx *gorm.DB, post *models.Post, ids []string) error {
	if len(ids) == 0 {
		return tx.Model(post).Association("Related").Clear()
	}

	var related []*models.Post
	if err := tx.Where("id IN ? AND id != ?", ids, post.ID).Find(&related).Error; err != nil {
		return err
	}

	return tx.Model(post).Association("Related").Replace(related)
}

// loadPost fetches a post with its associations for response rendering
func loadPost(id string) (*models.Post, error) {
	var post models.Post
	if err := db.DB.Preload("User").Preload("Tags").Preload("Related").
		First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}
