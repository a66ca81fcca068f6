package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// postDetailPath is where every comment workflow ends up, success or not.
func postDetailPath(postID uint) string {
	return fmt.Sprintf("/posts/%d", postID)
}

// validateCommentText checks submitted comment text. The returned message
// is empty when the text is acceptable.
func validateCommentText(text string) string {
	if strings.TrimSpace(text) == "" {
		return "Comment text must not be empty"
	}
	return ""
}

// Create attaches a comment to the post named in the URL path. The target
// post and the author both come from the request context, never from form
// fields.
func (h *CommentHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	text := c.PostForm("text")
	if msg := validateCommentText(text); msg != "" {
		Render(c, http.StatusBadRequest, "comments/form.html", gin.H{
			"Title":   "New comment",
			"Error":   msg,
			"Comment": &models.Comment{PostID: post.ID, Text: text},
		})
		return
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: user.ID,
		Text:     text,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the comment")
		return
	}

	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

// loadComment fetches the comment addressed by the route, checking that it
// belongs to the post in the same route.
func loadComment(c *gin.Context) (*models.Comment, bool) {
	postID := utils.StringToUint(c.Param("id"))
	commentID := utils.StringToUint(c.Param("cid"))

	var comment models.Comment
	if err := db.DB.Where("id = ? AND post_id = ?", commentID, postID).
		First(&comment).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Comment not found")
		return nil, false
	}
	return &comment, true
}

func (h *CommentHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	comment, ok := loadComment(c)
	if !ok {
		return
	}

	if !comment.EditableBy(user) {
		c.Redirect(http.StatusFound, postDetailPath(comment.PostID))
		return
	}

	Render(c, http.StatusOK, "comments/form.html", gin.H{
		"Title":   "Edit comment",
		"Comment": comment,
	})
}

func (h *CommentHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	comment, ok := loadComment(c)
	if !ok {
		return
	}

	if !comment.EditableBy(user) {
		c.Redirect(http.StatusFound, postDetailPath(comment.PostID))
		return
	}

	text := c.PostForm("text")
	if msg := validateCommentText(text); msg != "" {
		Render(c, http.StatusBadRequest, "comments/form.html", gin.H{
			"Title":   "Edit comment",
			"Error":   msg,
			"Comment": comment,
		})
		return
	}

	// Only the text changes; CreatedAt keeps the original timeline position.
	comment.Text = text
	if err := db.DB.Save(comment).Error; err != nil {
		Render(c, http.StatusInternalServerError, "comments/form.html", gin.H{
			"Title":   "Edit comment",
			"Error":   "Could not save the comment",
			"Comment": comment,
		})
		return
	}

	c.Redirect(http.StatusFound, postDetailPath(comment.PostID))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	comment, ok := loadComment(c)
	if !ok {
		return
	}

	if !comment.EditableBy(user) {
		c.Redirect(http.StatusFound, postDetailPath(comment.PostID))
		return
	}

	db.DB.Delete(comment)

	c.Redirect(http.StatusFound, postDetailPath(comment.PostID))
}
