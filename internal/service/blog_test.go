package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/quillbox/quillbox-go/internal/apperr"
	"github.com/quillbox/quillbox-go/internal/model"
)

func newTestBlogService(t *testing.T) (*BlogService, *fakeBlogStore, *fakeUserStore) {
	t.Helper()
	blogs := newFakeBlogStore()
	users := newFakeUserStore()
	return NewBlogService(blogs, users), blogs, users
}

func TestCreateBlogMissingUserID(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	_, err := svc.Create(context.Background(), model.CreateBlogRequest{
		ProfileName: "alice",
		Title:       "Title",
		Content:     "Content",
	})
	if !errors.Is(err, apperr.New(apperr.CodeUserNotFound)) {
		t.Fatalf("Create() error = %v, want USER_NOT_FOUND", err)
	}
	if apperr.From(err).Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400 for a missing author id", apperr.From(err).Status)
	}
}

func TestCreateBlogMissingTitle(t *testing.T) {
	svc, _, users := newTestBlogService(t)
	seedUser(t, users, "u-1", "a@x.com", "alice", "pw")

	_, err := svc.Create(context.Background(), model.CreateBlogRequest{
		UserID:      "u-1",
		ProfileName: "alice",
		Content:     "Content",
	})
	if !errors.Is(err, apperr.New(apperr.CodeMissingFields)) {
		t.Errorf("Create() error = %v, want MISSING_REQUIRED_FIELDS", err)
	}
}

func TestCreateBlogDenormalizesAuthor(t *testing.T) {
	svc, _, users := newTestBlogService(t)
	seedUser(t, users, "u-1", "a@x.com", "alice", "pw")
	users.users["u-1"].ProfileImg = "https://img.example/alice.png"

	blog, err := svc.Create(context.Background(), model.CreateBlogRequest{
		UserID:  "u-1",
		Title:   "First post",
		Content: "Hello",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if blog.ID == "" {
		t.Error("Create() returned empty blog id")
	}
	if blog.AuthorProfileName != "alice" {
		t.Errorf("AuthorProfileName = %q, want alice", blog.AuthorProfileName)
	}
	if blog.AuthorProfileImg != "https://img.example/alice.png" {
		t.Errorf("AuthorProfileImg = %q", blog.AuthorProfileImg)
	}
	if blog.Likers == nil || blog.Dislikers == nil {
		t.Error("new blog should carry empty, non-nil reaction sets")
	}
}

func TestCreateBlogUnknownAuthor(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	_, err := svc.Create(context.Background(), model.CreateBlogRequest{
		UserID:  "ghost",
		Title:   "Title",
		Content: "Content",
	})
	if !errors.Is(err, apperr.New(apperr.CodeUserNotFound)) {
		t.Errorf("Create() error = %v, want USER_NOT_FOUND", err)
	}
}

func TestToggleMissingUserID(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	_, err := svc.Toggle(context.Background(), "b-1", model.ReactionRequest{Type: model.ReactionLike})
	if !errors.Is(err, apperr.New(apperr.CodeMissingFields)) {
		t.Errorf("Toggle() error = %v, want MISSING_REQUIRED_FIELDS", err)
	}
}

func TestToggleUnknownBlog(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	_, err := svc.Toggle(context.Background(), "missing", model.ReactionRequest{
		UserID: "u-1",
		Type:   model.ReactionLike,
	})
	if !errors.Is(err, apperr.New(apperr.CodeBlogNotFound)) {
		t.Errorf("Toggle() error = %v, want BLOG_NOT_FOUND", err)
	}
}

func TestToggleInvalidKind(t *testing.T) {
	svc, blogs, _ := newTestBlogService(t)
	blogs.blogs["b-1"] = &model.Blog{ID: "b-1"}

	_, err := svc.Toggle(context.Background(), "b-1", model.ReactionRequest{
		UserID: "u-1",
		Type:   "applaud",
	})
	if !errors.Is(err, apperr.New(apperr.CodeMissingFields)) {
		t.Errorf("Toggle() error = %v, want MISSING_REQUIRED_FIELDS", err)
	}
}

// Toggling the same reaction twice returns the post to its prior state.
func TestToggleIsItsOwnInverse(t *testing.T) {
	svc, blogs, _ := newTestBlogService(t)
	blogs.blogs["b-1"] = &model.Blog{ID: "b-1"}

	first, err := svc.Toggle(context.Background(), "b-1", model.ReactionRequest{
		UserID: "u-1",
		Type:   model.ReactionLike,
	})
	if err != nil {
		t.Fatalf("Toggle() unexpected error: %v", err)
	}
	if len(first.Likers) != 1 {
		t.Fatalf("Likers = %v after first like", first.Likers)
	}

	second, err := svc.Toggle(context.Background(), "b-1", model.ReactionRequest{
		UserID: "u-1",
		Type:   model.ReactionLike,
	})
	if err != nil {
		t.Fatalf("Toggle() unexpected error: %v", err)
	}
	if len(second.Likers) != 0 || len(second.Dislikers) != 0 {
		t.Errorf("second identical toggle should clear membership, got %+v", second)
	}
}

// A user switching from like to dislike ends up in dislikers only.
func TestToggleMutualExclusion(t *testing.T) {
	svc, blogs, _ := newTestBlogService(t)
	blogs.blogs["b-1"] = &model.Blog{ID: "b-1"}

	if _, err := svc.Toggle(context.Background(), "b-1", model.ReactionRequest{
		UserID: "u-1",
		Type:   model.ReactionLike,
	}); err != nil {
		t.Fatalf("Toggle() unexpected error: %v", err)
	}

	result, err := svc.Toggle(context.Background(), "b-1", model.ReactionRequest{
		UserID: "u-1",
		Type:   model.ReactionDislike,
	})
	if err != nil {
		t.Fatalf("Toggle() unexpected error: %v", err)
	}
	if len(result.Likers) != 0 {
		t.Errorf("Likers = %v, want empty after switching to dislike", result.Likers)
	}
	if len(result.Dislikers) != 1 || result.Dislikers[0] != "u-1" {
		t.Errorf("Dislikers = %v, want [u-1]", result.Dislikers)
	}
}

func TestToggleIndependentUsers(t *testing.T) {
	svc, blogs, _ := newTestBlogService(t)
	blogs.blogs["b-1"] = &model.Blog{ID: "b-1"}

	if _, err := svc.Toggle(context.Background(), "b-1", model.ReactionRequest{
		UserID: "u-1",
		Type:   model.ReactionLike,
	}); err != nil {
		t.Fatalf("Toggle() unexpected error: %v", err)
	}
	result, err := svc.Toggle(context.Background(), "b-1", model.ReactionRequest{
		UserID: "u-2",
		Type:   model.ReactionDislike,
	})
	if err != nil {
		t.Fatalf("Toggle() unexpected error: %v", err)
	}
	if len(result.Likers) != 1 || len(result.Dislikers) != 1 {
		t.Errorf("independent users should not affect each other, got %+v", result)
	}
}
