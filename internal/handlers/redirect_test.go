package handlers

import (
	"testing"

	"inkwell/internal/models"
)

// A non-author who reaches a post mutation route is sent to the post
// author's profile, while a denied comment mutation lands back on the
// parent post's detail page.
func TestDeniedMutationRedirectTargets(t *testing.T) {
	owner := models.User{ID: 2, Username: "owner"}
	post := models.Post{ID: 5, AuthorID: owner.ID, Author: owner}
	actor := &models.User{ID: 1, Username: "visitor"}

	if post.EditableBy(actor) {
		t.Fatal("visitor must not be able to edit another user's post")
	}
	if got := authorProfilePath(&post); got != "/profile/owner" {
		t.Errorf("post denial redirect = %q, want /profile/owner", got)
	}

	comment := models.Comment{ID: 9, PostID: post.ID, AuthorID: owner.ID}
	if comment.EditableBy(actor) {
		t.Fatal("visitor must not be able to edit another user's comment")
	}
	if got := postDetailPath(comment.PostID); got != "/posts/5" {
		t.Errorf("comment denial redirect = %q, want /posts/5", got)
	}
}
