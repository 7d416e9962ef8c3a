package question

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
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

	var dto CreateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	q, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to create question")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	q, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		log.WithError(err).Warn("Failed to update question")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) ReplaceOptions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto ReplaceOptionsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	q, err := h.service.ReplaceOptions(r.Context(), id, dto)
	if err != nil {
		log.WithError(err).Warn("Failed to replace options")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to delete question")
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

	q, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) ListBySubtopic(w http.ResponseWriter, r *http.Request) {
	subtopicID, ok := parseID(r, "subtopicID")
	if !ok {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}

	difficulty := Difficulty(r.URL.Query().Get("difficulty"))
	if difficulty == "" {
		difficulty = DifficultyAll
	}

	questions, err := h.service.ListBySubtopic(r.Context(), subtopicID, difficulty)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}
