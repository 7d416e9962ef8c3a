package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/drafts", h.GenerateDrafts)
	r.Post("/save", h.SaveDraft)

	return r
}
