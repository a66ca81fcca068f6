package handlers

import (
	"net/http"
	"strings"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// validateProfileEmail checks the submitted profile email. Accounts log in
// by email, so it can be changed but never cleared.
func validateProfileEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email must not be empty"
	}
	if !strings.Contains(email, "@") {
		return "Email address is not valid"
	}
	return ""
}

// Profile - public author page with their posts. The owner sees all of
// their posts, drafts and scheduled ones included; everyone else gets the
// public visibility filter.
func (h *ProfileHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var profile models.User
	if err := db.DB.Where("username = ?", username).First(&profile).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	viewer := middleware.CurrentUser(c)
	isOwner := viewer != nil && viewer.ID == profile.ID

	now := time.Now()
	scoped := func() *gorm.DB {
		if isOwner {
			return db.DB.Model(&models.Post{}).Where("posts.author_id = ?", profile.ID)
		}
		return visiblePosts(now).Where("posts.author_id = ?", profile.ID)
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

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"Title":      profile.Username,
		"Profile":    profile,
		"IsOwner":    isOwner,
		"Posts":      posts,
		"Categories": publishedCategories(),
		"Page":       page,
	})
}

func (h *ProfileHandler) ShowEdit(c *gin.Context) {
	username := c.Param("username")

	var profile models.User
	if err := db.DB.Where("username = ?", username).First(&profile).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	Render(c, http.StatusOK, "user/edit.html", gin.H{
		"Title":   "Edit profile",
		"Profile": profile,
	})
}

// Update edits the profile named in the path. Note: any logged-in user may
// edit any profile here; the acting identity is not compared against the
// path username. That matches the system this replaces and is tracked in
// DESIGN.md rather than silently fixed.
func (h *ProfileHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	var profile models.User
	if err := db.DB.Where("username = ?", username).First(&profile).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	email := strings.TrimSpace(c.PostForm("email"))
	if msg := validateProfileEmail(email); msg != "" {
		Render(c, http.StatusBadRequest, "user/edit.html", gin.H{
			"Title":   "Edit profile",
			"Error":   msg,
			"Profile": profile,
		})
		return
	}
	if email != profile.Email {
		var existing models.User
		if err := db.DB.Where("email = ? AND id != ?", email, profile.ID).
			First(&existing).Error; err == nil {
			Render(c, http.StatusBadRequest, "user/edit.html", gin.H{
				"Title":   "Edit profile",
				"Error":   "That email is already in use",
				"Profile": profile,
			})
			return
		}
		profile.Email = email
	}

	profile.FirstName = c.PostForm("first_name")
	profile.LastName = c.PostForm("last_name")

	if err := db.DB.Save(&profile).Error; err != nil {
		Render(c, http.StatusInternalServerError, "user/edit.html", gin.H{
			"Title":   "Edit profile",
			"Error":   "Could not save the profile",
			"Profile": profile,
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}
