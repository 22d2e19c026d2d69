package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/quillbox/quillbox-go/internal/model"
)

var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository handles blog post and reaction persistence.
type BlogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// toggleQuery flips a user's reaction in a single statement: a fresh row
// gets the requested value, a repeated identical reaction resets to 0
// (toggle-off), and the opposite reaction is overwritten. The one-row-per-
// (blog, user) primary key makes likers/dislikers mutually exclusive.
const toggleQuery = `
	INSERT INTO blog_reactions (blog_id, user_id, value)
	VALUES (?, ?, ?)
	ON DUPLICATE KEY UPDATE
		value = IF(value = VALUES(value), 0, VALUES(value))`

// Create inserts a new blog post.
func (r *BlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `INSERT INTO blogs (id, title, content, image, author_id, author_profile_name, author_profile_img)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.ImageURL,
		blog.AuthorID,
		blog.AuthorProfileName,
		blog.AuthorProfileImg,
	)
	return err
}

// GetByID retrieves a single blog post with its reaction sets.
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	query := `SELECT id, title, content, image, author_id, author_profile_name, author_profile_img, created_at
		FROM blogs WHERE id = ?`

	blog := &model.Blog{Likers: []string{}, Dislikers: []string{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.ImageURL,
		&blog.AuthorID,
		&blog.AuthorProfileName,
		&blog.AuthorProfileImg,
		&blog.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	result, err := r.reactionSets(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	blog.Likers = result.Likers
	blog.Dislikers = result.Dislikers
	return blog, nil
}

// List returns all blog posts, newest first, with their reaction sets.
func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	query := `SELECT id, title, content, image, author_id, author_profile_name, author_profile_img, created_at
		FROM blogs ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []model.Blog{}
	index := map[string]int{}
	for rows.Next() {
		blog := model.Blog{Likers: []string{}, Dislikers: []string{}}
		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Content,
			&blog.ImageURL,
			&blog.AuthorID,
			&blog.AuthorProfileName,
			&blog.AuthorProfileImg,
			&blog.CreatedAt,
		); err != nil {
			return nil, err
		}
		index[blog.ID] = len(blogs)
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reactions, err := r.db.QueryContext(ctx,
		`SELECT blog_id, user_id, value FROM blog_reactions WHERE value <> 0`)
	if err != nil {
		return nil, err
	}
	defer reactions.Close()

	for reactions.Next() {
		var blogID, userID string
		var value int
		if err := reactions.Scan(&blogID, &userID, &value); err != nil {
			return nil, err
		}
		i, ok := index[blogID]
		if !ok {
			continue
		}
		if value > 0 {
			blogs[i].Likers = append(blogs[i].Likers, userID)
		} else {
			blogs[i].Dislikers = append(blogs[i].Dislikers, userID)
		}
	}
	return blogs, reactions.Err()
}

// ToggleReaction flips the user's reaction on a blog and returns the
// resulting membership sets. The upsert is atomic, so concurrent toggles on
// the same post cannot lose each other's update.
func (r *BlogRepository) ToggleReaction(ctx context.Context, blogID, userID string, value int) (*model.ReactionResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM blogs WHERE id = ? FOR UPDATE`, blogID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, toggleQuery, blogID, userID, value); err != nil {
		return nil, err
	}

	result, err := r.reactionSets(ctx, tx, blogID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *BlogRepository) reactionSets(ctx context.Context, q queryer, blogID string) (*model.ReactionResult, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT user_id, value FROM blog_reactions WHERE blog_id = ? AND value <> 0`, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &model.ReactionResult{Likers: []string{}, Dislikers: []string{}}
	for rows.Next() {
		var userID string
		var value int
		if err := rows.Scan(&userID, &value); err != nil {
			return nil, err
		}
		if value > 0 {
			result.Likers = append(result.Likers, userID)
		} else {
			result.Dislikers = append(result.Dislikers, userID)
		}
	}
	return result, rows.Err()
}
