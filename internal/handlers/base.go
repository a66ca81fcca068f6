package handlers

import (
	"time"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError renders the shared error page with the failing status.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

const publishedCategoriesKey = "categories:published"

// publishedCategories returns the published categories for navigation.
// The list only changes on seeding, so it is cached with a short TTL.
func publishedCategories() []models.Category {
	if cached := utils.GetCache().Get(publishedCategoriesKey); cached != nil {
		if categories, ok := cached.([]models.Category); ok {
			return categories
		}
	}

	var categories []models.Category
	db.DB.Where("is_published = ?", true).Order("id ASC").Find(&categories)
	utils.GetCache().Set(publishedCategoriesKey, categories, 5*time.Minute)
	return categories
}
