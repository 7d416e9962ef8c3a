package stats

import (
	"net/http"

	"github.com/Prathapkumar-67/aptitude-website/internal/config"
)

type Handler struct {
	service StatsService
}

func NewHandler(s StatsService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Dashboard(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, out)
}
