package handlers

import (
	"html/template"
	"net/http"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	imageStore *services.ImageStore
}

func NewPostHandler() *PostHandler {
	return &PostHandler{
		imageStore: services.NewImageStore(),
	}
}

// visiblePosts builds the base query for publicly visible posts: published,
// in a published (or no) category, and not future-dated. Single-post pages
// additionally let the author through, see Detail.
func visiblePosts(now time.Time) *gorm.DB {
	return db.DB.Model(&models.Post{}).
		Joins("LEFT JOIN categories ON categories.id = posts.category_id").
		Where("posts.is_published = ?", true).
		Where("(posts.category_id IS NULL OR categories.is_published = ?)", true).
		Where("posts.pub_date <= ?", now)
}

// listingOrder is the shared listing order: newest publication first, ties
// kept in insertion order.
const listingOrder = "posts.pub_date DESC, posts.id ASC"

// authorProfilePath is where a denied post mutation lands: the post
// author's profile. Denied comment mutations go to the post detail page
// instead, see postDetailPath.
func authorProfilePath(post *models.Post) string {
	return "/profile/" + post.Author.Username
}

// fillCommentCounts annotates posts with their comment counts in one
// grouped query, leaving identity and ordering untouched.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

// Index - the front page, all publicly visible posts, newest first.
func (h *PostHandler) Index(c *gin.Context) {
	now := time.Now()

	var total int64
	visiblePosts(now).Count(&total)
	page := utils.Paginate(c.Query("page"), total, utils.PerPage)

	var posts []models.Post
	visiblePosts(now).
		Preload("Author").Preload("Category").Preload("Location").
		Order(listingOrder).
		Limit(page.PerPage).
		Offset(page.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	Render(c, http.StatusOK, "posts/list.html", gin.H{
		"Title":      "Latest posts",
		"Posts":      posts,
		"Categories": publishedCategories(),
		"Page":       page,
	})
}

// Detail - single post page with its comment thread. Hidden or future posts
// look exactly like missing ones to everybody but their author.
func (h *PostHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("Author").Preload("Category").Preload("Location").
		First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	user := middleware.CurrentUser(c)
	if !post.VisibleAt(time.Now()) && !post.EditableBy(user) {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	var comments []models.Comment
	db.DB.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments)

	type renderedComment struct {
		models.Comment
		TextHTML template.HTML
	}
	rendered := make([]renderedComment, len(comments))
	for i, comment := range comments {
		rendered[i] = renderedComment{
			Comment:  comment,
			TextHTML: utils.RenderMarkdown(comment.Text),
		}
	}
	post.CommentCount = len(comments)

	Render(c, http.StatusOK, "posts/detail.html", gin.H{
		"Title":    post.Title,
		"Post":     post,
		"PostText": utils.RenderMarkdown(post.Text),
		"Comments": rendered,
	})
}

// postForm carries the parsed create/edit form fields.
type postForm struct {
	Title      string
	Text       string
	PubDate    time.Time
	CategoryID *uint
	LocationID *uint
	Image      string
}

// formSelects loads the select-box options for the post form.
func formSelects() (categories []models.Category, locations []models.Location) {
	db.DB.Order("title ASC").Find(&categories)
	db.DB.Where("is_published = ?", true).Order("name ASC").Find(&locations)
	return
}

// derefID unwraps an optional foreign key for template select pre-selection.
func derefID(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}

// parsePostForm validates the submitted post form. The returned message is
// empty on success and human-readable on a validation failure.
func (h *PostHandler) parsePostForm(c *gin.Context) (postForm, string) {
	var form postForm

	form.Title = c.PostForm("title")
	form.Text = c.PostForm("text")
	if form.Title == "" {
		return form, "Title must not be empty"
	}
	if len(form.Title) > 256 {
		return form, "Title must be 256 characters or less"
	}
	if form.Text == "" {
		return form, "Text must not be empty"
	}

	// A future publication date schedules the post.
	form.PubDate = time.Now()
	if raw := c.PostForm("pub_date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02T15:04", raw, time.Local)
		if err != nil {
			return form, "Publication date is not valid"
		}
		form.PubDate = parsed
	}

	if raw := c.PostForm("category_id"); raw != "" {
		var category models.Category
		if err := db.DB.First(&category, utils.StringToUint(raw)).Error; err != nil {
			return form, "Unknown category"
		}
		form.CategoryID = &category.ID
	}

	if raw := c.PostForm("location_id"); raw != "" {
		var location models.Location
		if err := db.DB.First(&location, utils.StringToUint(raw)).Error; err != nil {
			return form, "Unknown location"
		}
		form.LocationID = &location.ID
	}

	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		path, err := h.imageStore.Save(file, header)
		if err != nil {
			return form, "Image upload failed: " + err.Error()
		}
		form.Image = path
	}

	return form, ""
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	categories, locations := formSelects()
	Render(c, http.StatusOK, "posts/form.html", gin.H{
		"Title":            "New post",
		"Categories":       categories,
		"Locations":        locations,
		"SelectedCategory": uint(0),
		"SelectedLocation": uint(0),
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	form, formErr := h.parsePostForm(c)
	if formErr != "" {
		categories, locations := formSelects()
		Render(c, http.StatusBadRequest, "posts/form.html", gin.H{
			"Title":            "New post",
			"Error":            formErr,
			"Form":             form,
			"Categories":       categories,
			"Locations":        locations,
			"SelectedCategory": derefID(form.CategoryID),
			"SelectedLocation": derefID(form.LocationID),
		})
		return
	}

	// The author is always the acting user, whatever the client sent.
	post := models.Post{
		Title:       form.Title,
		Text:        form.Text,
		PubDate:     form.PubDate,
		AuthorID:    user.ID,
		CategoryID:  form.CategoryID,
		LocationID:  form.LocationID,
		Image:       form.Image,
		IsPublished: true,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		categories, locations := formSelects()
		Render(c, http.StatusInternalServerError, "posts/form.html", gin.H{
			"Title":            "New post",
			"Error":            "Could not save the post",
			"Form":             form,
			"Categories":       categories,
			"Locations":        locations,
			"SelectedCategory": derefID(form.CategoryID),
			"SelectedLocation": derefID(form.LocationID),
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("Author").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !post.EditableBy(user) {
		c.Redirect(http.StatusFound, authorProfilePath(&post))
		return
	}

	categories, locations := formSelects()
	Render(c, http.StatusOK, "posts/form.html", gin.H{
		"Title":            "Edit post",
		"Post":             post,
		"Categories":       categories,
		"Locations":        locations,
		"SelectedCategory": derefID(post.CategoryID),
		"SelectedLocation": derefID(post.LocationID),
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("Author").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !post.EditableBy(user) {
		c.Redirect(http.StatusFound, authorProfilePath(&post))
		return
	}

	form, formErr := h.parsePostForm(c)
	if formErr != "" {
		categories, locations := formSelects()
		Render(c, http.StatusBadRequest, "posts/form.html", gin.H{
			"Title":            "Edit post",
			"Error":            formErr,
			"Post":             post,
			"Form":             form,
			"Categories":       categories,
			"Locations":        locations,
			"SelectedCategory": derefID(form.CategoryID),
			"SelectedLocation": derefID(form.LocationID),
		})
		return
	}

	// AuthorID stays untouched: authorship never changes hands.
	post.Title = form.Title
	post.Text = form.Text
	post.PubDate = form.PubDate
	post.CategoryID = form.CategoryID
	post.LocationID = form.LocationID
	if form.Image != "" {
		post.Image = form.Image
	}

	if err := db.DB.Save(&post).Error; err != nil {
		categories, locations := formSelects()
		Render(c, http.StatusInternalServerError, "posts/form.html", gin.H{
			"Title":            "Edit post",
			"Error":            "Could not save the post",
			"Post":             post,
			"Categories":       categories,
			"Locations":        locations,
			"SelectedCategory": derefID(post.CategoryID),
			"SelectedLocation": derefID(post.LocationID),
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("Author").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !post.EditableBy(user) {
		c.Redirect(http.StatusFound, authorProfilePath(&post))
		return
	}

	// Comments go with the post, cascade enforced at the database level.
	db.DB.Delete(&post)

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}
