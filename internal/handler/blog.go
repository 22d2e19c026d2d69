package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quillbox/quillbox-go/internal/model"
	"github.com/quillbox/quillbox-go/internal/service"
)

// BlogHandler handles HTTP requests for blog posts and reactions.
type BlogHandler struct {
	service *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(svc *service.BlogService) *BlogHandler {
	return &BlogHandler{service: svc}
}

// HandleGetBlogs handles GET /api/blogs/getBlogs requests.
func (h *BlogHandler) HandleGetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blogs)
}

// HandleCreateBlog handles POST /api/blogs/createBlog requests.
func (h *BlogHandler) HandleCreateBlog(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBlogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	blog, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"blog":    blog,
		"message": "Blog created successfully",
	})
}

// HandleToggleReaction handles POST /api/blogs/hitLikeOrDislike/{blogId}.
func (h *BlogHandler) HandleToggleReaction(w http.ResponseWriter, r *http.Request) {
	blogID := chi.URLParam(r, "blogId")

	var req model.ReactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Toggle(r.Context(), blogID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"likes":    result.Likers,
		"dislikes": result.Dislikers,
		"message":  "Reaction updated successfully",
	})
}
