package streak

import (
	"net/http"

	"github.com/Prathapkumar-67/aptitude-website/internal/config"
)

type Handler struct {
	service StreakService
}

func NewHandler(s StreakService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Current(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]int{"streak_count": count})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	streaks, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}
	if streaks == nil {
		streaks = []UserStreak{}
	}

	config.JSON(w, http.StatusOK, streaks)
}
