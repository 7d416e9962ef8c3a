package subtopic

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service SubtopicService
}

func NewHandler(s SubtopicService) *Handler {
	return &Handler{service: s}
}

func parseID(r *http.Request, param string) (uint, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateSubtopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	st, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to create subtopic")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, st)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateSubtopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	st, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		log.WithError(err).Warn("Failed to update subtopic")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, st)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to delete subtopic")
		config.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	st, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, st)
}

func (h *Handler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, ok := parseID(r, "topicID")
	if !ok {
		http.Error(w, "invalid topic id", http.StatusBadRequest)
		return
	}

	subtopics, err := h.service.ListByTopic(r.Context(), topicID)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, subtopics)
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topicID, ok := parseID(r, "topicID")
	if !ok {
		http.Error(w, "invalid topic id", http.StatusBadRequest)
		return
	}

	items, err := h.service.Overview(r.Context(), topicID)
	if err != nil {
		log.WithError(err).Warn("Failed to build subtopic overview")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, items)
}
