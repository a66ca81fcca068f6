package models

import (
	"testing"
	"time"
)

func TestPostVisibleAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	published := &Category{ID: 1, Title: "Travel", Slug: "travel", IsPublished: true}
	hidden := &Category{ID: 2, Title: "Drafts", Slug: "drafts", IsPublished: false}

	tests := []struct {
		name string
		post Post
		want bool
	}{
		{"published past post", Post{IsPublished: true, PubDate: now.Add(-time.Hour)}, true},
		{"unpublished post", Post{IsPublished: false, PubDate: now.Add(-time.Hour)}, false},
		{"future post", Post{IsPublished: true, PubDate: now.Add(time.Hour)}, false},
		{"pub date exactly now", Post{IsPublished: true, PubDate: now}, true},
		{"published category", Post{IsPublished: true, PubDate: now.Add(-time.Hour), Category: published}, true},
		{"unpublished category", Post{IsPublished: true, PubDate: now.Add(-time.Hour), Category: hidden}, false},
		{"no category", Post{IsPublished: true, PubDate: now.Add(-time.Hour), Category: nil}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.post.VisibleAt(now); got != tt.want {
				t.Errorf("VisibleAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostEditableBy(t *testing.T) {
	post := Post{AuthorID: 7}

	if post.EditableBy(nil) {
		t.Error("anonymous user must not edit a post")
	}
	if post.EditableBy(&User{ID: 8}) {
		t.Error("non-author must not edit a post")
	}
	if !post.EditableBy(&User{ID: 7}) {
		t.Error("author must be able to edit their own post")
	}
}

func TestCommentEditableBy(t *testing.T) {
	comment := Comment{AuthorID: 3}

	if comment.EditableBy(nil) {
		t.Error("anonymous user must not edit a comment")
	}
	if comment.EditableBy(&User{ID: 4}) {
		t.Error("non-author must not edit a comment")
	}
	if !comment.EditableBy(&User{ID: 3}) {
		t.Error("author must be able to edit their own comment")
	}
}
