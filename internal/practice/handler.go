package practice

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service PracticeService
}

func NewHandler(s PracticeService) *Handler {
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

func (h *Handler) QuestionAt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	subtopicID, ok := parseID(r, "subtopicID")
	if !ok {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}
	difficulty := question.Difficulty(chi.URLParam(r, "difficulty"))

	index := 0
	if raw := r.URL.Query().Get("index"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid index", http.StatusBadRequest)
			return
		}
		index = parsed
	}

	step, err := h.service.QuestionAt(r.Context(), subtopicID, difficulty, index)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve quiz step")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, step)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SubmitAnswerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	resp, err := h.service.SubmitAnswer(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to submit answer")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	subtopicID, ok := parseID(r, "subtopicID")
	if !ok {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}
	difficulty := question.Difficulty(chi.URLParam(r, "difficulty"))

	summary, err := h.service.Progress(r.Context(), subtopicID, difficulty)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	answers, err := h.service.History(r.Context())
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, answers)
}
