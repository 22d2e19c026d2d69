package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/quillbox/quillbox-go/internal/apperr"
	"github.com/quillbox/quillbox-go/internal/model"
	"github.com/quillbox/quillbox-go/internal/repository"
)

// BlogStore is the blog persistence surface the blog workflow needs.
type BlogStore interface {
	Create(ctx context.Context, blog *model.Blog) error
	List(ctx context.Context) ([]model.Blog, error)
	ToggleReaction(ctx context.Context, blogID, userID string, value int) (*model.ReactionResult, error)
}

// BlogService handles blog listing, creation and the like/dislike toggle.
type BlogService struct {
	blogs BlogStore
	users UserStore
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogs BlogStore, users UserStore) *BlogService {
	return &BlogService{blogs: blogs, users: users}
}

// List returns all blog posts with their reaction sets.
func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}
	return blogs, nil
}

// Create persists a new blog post, denormalizing the author's profile name
// and image onto the post at creation time.
func (s *BlogService) Create(ctx context.Context, req model.CreateBlogRequest) (*model.Blog, error) {
	if req.UserID == "" {
		// The author is effectively "not found" before any lookup; this is
		// a validation failure, so the 404 code travels with a 400 status.
		return nil, apperr.New(apperr.CodeUserNotFound).WithStatus(http.StatusBadRequest)
	}
	if req.Title == "" || req.Content == "" {
		return nil, apperr.New(apperr.CodeMissingFields)
	}

	author, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.New(apperr.CodeUserNotFound)
		}
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}

	blog := &model.Blog{
		ID:                uuid.NewString(),
		Title:             req.Title,
		Content:           req.Content,
		ImageURL:          req.ImageURL,
		AuthorID:          author.ID,
		AuthorProfileName: author.ProfileName,
		AuthorProfileImg:  author.ProfileImg,
		Likers:            []string{},
		Dislikers:         []string{},
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}
	return blog, nil
}

// Toggle flips a user's like or dislike on a blog post and returns the
// resulting membership sets.
func (s *BlogService) Toggle(ctx context.Context, blogID string, req model.ReactionRequest) (*model.ReactionResult, error) {
	if req.UserID == "" {
		return nil, apperr.New(apperr.CodeMissingFields)
	}

	var value int
	switch req.Type {
	case model.ReactionLike:
		value = 1
	case model.ReactionDislike:
		value = -1
	default:
		return nil, apperr.New(apperr.CodeMissingFields)
	}

	result, err := s.blogs.ToggleReaction(ctx, blogID, req.UserID, value)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, apperr.New(apperr.CodeBlogNotFound)
		}
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}
	return result, nil
}
