package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quillbox/quillbox-go/internal/middleware"
)

// Routes mounts the API surface. The access gate protects only the user
// data endpoints; refresh and logout authenticate via the refresh cookie.
func Routes(auth *AuthHandler, blog *BlogHandler, accessSecret string) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", auth.HandleRegister)
		r.Post("/login", auth.HandleLogin)
		r.Post("/refresh", auth.HandleRefresh)
		r.Post("/logout", auth.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AccessGate(accessSecret))
			r.Get("/user/{userId}", auth.HandleGetUser)
			r.Put("/user/update", auth.HandleUpdateUser)
		})
	})

	r.Route("/api/blogs", func(r chi.Router) {
		r.Get("/getBlogs", blog.HandleGetBlogs)
		r.Post("/createBlog", blog.HandleCreateBlog)
		r.Post("/hitLikeOrDislike/{blogId}", blog.HandleToggleReaction)
	})

	return r
}
