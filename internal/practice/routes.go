package practice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/history", h.History)
	r.Post("/answers", h.SubmitAnswer)
	r.Get("/{subtopicID}/{difficulty}", h.QuestionAt)
	r.Get("/{subtopicID}/{difficulty}/progress", h.Progress)

	return r
}
