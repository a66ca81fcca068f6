package handlers

import (
	"net/http"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// Posts - paginated listing of one category. An unknown slug and an
// unpublished category are both a plain 404; the difference is not leaked.
func (h *CategoryHandler) Posts(c *gin.Context) {
	slug := c.Param("slug")

	var category models.Category
	if err := db.DB.Where("slug = ? AND is_published = ?", slug, true).
		First(&category).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	now := time.Now()
	scoped := func() *gorm.DB {
		return visiblePosts(now).Where("posts.category_id = ?", category.ID)
	}

	var total int64
	scoped().Count(&total)
	page := utils.Paginate(c.Query("page"), total, utils.PerPage)

	var posts []models.Post
	scoped().
		Preload("Author").Preload("Category").Preload("Location").
		Order(listingOrder).
		Limit(page.PerPage).
		Offset(page.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	Render(c, http.StatusOK, "posts/list.html", gin.H{
		"Title":      category.Title,
		"Category":   category,
		"Posts":      posts,
		"Categories": publishedCategories(),
		"Page":       page,
	})
}
