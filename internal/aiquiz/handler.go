package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/Prathapkumar-67/aptitude-website/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateDrafts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GenerateDraftsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	drafts, err := h.service.GenerateDrafts(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to generate draft questions")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, drafts)
}

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SaveDraftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	q, err := h.service.SaveDraft(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to save draft question")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}
