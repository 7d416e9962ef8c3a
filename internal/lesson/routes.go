package lesson

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/page/{subtopicID}", h.Page)

	r.Post("/videos", h.CreateVideo)
	r.Put("/videos/{id}", h.UpdateVideo)
	r.Delete("/videos/{id}", h.DeleteVideo)

	r.Post("/notes", h.CreateNote)
	r.Put("/notes/{id}", h.UpdateNote)
	r.Delete("/notes/{id}", h.DeleteNote)

	r.Post("/resources", h.CreateResource)
	r.Put("/resources/{id}", h.UpdateResource)
	r.Delete("/resources/{id}", h.DeleteResource)

	return r
}
