package handlers

import (
	"net/http"

	"helio_platform_go/db"
	"helio_platform_go/middleware"
	"helio_platform_go/schemas"

	"github.com/labstack/echo/v4"
)

// UpdateCurrentUserHandler partially updates the account fields of the
// authenticated user. Absent fields are left untouched.
func UpdateCurrentUserHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	var in schemas.UserUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	in.Normalize()
	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}

	if len(updates) > 0 {
		if err := db.DB.Model(user).Updates(updates).Error; err != nil {
			return respondError(c, err)
		}
		if err := db.DB.First(user, "id = ?", user.ID).Error; err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfileHandler partially updates the profile sub-object
func UpdateProfileHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	var in schemas.ProfileUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	updates := map[string]interface{}{}
	if in.Bio != nil {
		updates["profile_bio"] = *in.Bio
	}
	if in.Location != nil {
		updates["profile_location"] = *in.Location
	}
	if in.Website != nil {
		updates["profile_website"] = *in.Website
	}

	if len(updates) > 0 {
		if err := db.DB.Model(user).Updates(updates).Error; err != nil {
			return respondError(c, err)
		}
		if err := db.DB.First(user, "id = ?", user.ID).Error; err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateSocialHandler partially updates the social links sub-object
func UpdateSocialHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	var in schemas.SocialUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := schemas.Check(&in); err != nil {
		return respondError(c, err)
	}

	updates := map[string]interface{}{}
	if in.Twitter != nil {
		updates["social_twitter"] = *in.Twitter
	}
	if in.Github != nil {
		updates["social_github"] = *in.Github
	}
	if in.Linkedin != nil {
		updates["social_linkedin"] = *in.Linkedin
	}

	if len(updates) > 0 {
		if err := db.DB.Model(user).Updates(updates).Error; err != nil {
			return respondError(c, err)
		}
		if err := db.DB.First(user, "id = ?", user.ID).Error; err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, user)
}
