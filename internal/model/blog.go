package model

import "time"

// Reaction kinds accepted by the like/dislike toggle.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Blog represents a blog post. Author name and image are denormalized at
// creation time; likers and dislikers are projections of the reactions table.
type Blog struct {
	ID                string    `json:"id"`
	Title             string    `json:"blogTitle"`
	Content           string    `json:"blogContent"`
	ImageURL          string    `json:"imageUrl,omitempty"`
	AuthorID          string    `json:"author_id"`
	AuthorProfileName string    `json:"author_profile_name"`
	AuthorProfileImg  string    `json:"author_profile_img,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	Likers            []string  `json:"likes"`
	Dislikers         []string  `json:"dislikes"`
}

// CreateBlogRequest represents a blog creation request.
type CreateBlogRequest struct {
	UserID      string `json:"userId"`
	ProfileName string `json:"profileName"`
	Title       string `json:"blogTitle" validate:"required"`
	Content     string `json:"blogContent" validate:"required"`
	ImageURL    string `json:"imageUrl"`
}

// ReactionRequest represents a like/dislike toggle request.
type ReactionRequest struct {
	UserID string `json:"userId"`
	Type   string `json:"type"`
}

// ReactionResult carries the membership sets after a toggle.
type ReactionResult struct {
	Likers    []string `json:"likes"`
	Dislikers []string `json:"dislikes"`
}
