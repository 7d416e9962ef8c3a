package notification

import (
	"encoding/json"
	"net/http"

	"github.com/Prathapkumar-67/aptitude-website/internal/config"
)

type Handler struct {
	service NotificationService
}

func NewHandler(s NotificationService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.service.Get(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, setting)
}

func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpsertSettingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	setting, err := h.service.Upsert(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to save notification setting")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, setting)
}
