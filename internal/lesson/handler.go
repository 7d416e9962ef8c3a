package lesson

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service LessonService
}

func NewHandler(s LessonService) *Handler {
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

func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateVideoLessonDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	v, err := h.service.CreateVideo(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to create video lesson")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, v)
}

func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateVideoLessonDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	v, err := h.service.UpdateVideo(r.Context(), id, dto)
	if err != nil {
		log.WithError(err).Warn("Failed to update video lesson")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, v)
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteVideo(r.Context(), id); err != nil {
		config.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateNoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	n, err := h.service.CreateNote(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to create note")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, n)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateNoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	n, err := h.service.UpdateNote(r.Context(), id, dto)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, n)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteNote(r.Context(), id); err != nil {
		config.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateResource(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateResourceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	res, err := h.service.CreateResource(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to create resource")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, res)
}

func (h *Handler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateResourceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	res, err := h.service.UpdateResource(r.Context(), id, dto)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, res)
}

func (h *Handler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteResource(r.Context(), id); err != nil {
		config.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "subtopicID")
	if !ok {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}

	page, err := h.service.Page(r.Context(), id)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, page)
}
