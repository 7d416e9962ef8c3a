package user

import (
	"encoding/json"
	"net/http"

	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Registration failed")
		config.Error(w, err)
		return
	}

	auth.SetTokenCookie(w, resp.Token)
	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Login failed")
		config.Error(w, err)
		return
	}

	auth.SetTokenCookie(w, resp.Token)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GoogleLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(dto); err != nil {
		config.Error(w, err)
		return
	}

	resp, err := h.service.GoogleLogin(r.Context(), dto.Code)
	if err != nil {
		log.WithError(err).Warn("Google login failed")
		config.Error(w, err)
		return
	}

	auth.SetTokenCookie(w, resp.Token)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.CurrentUserID(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.Me(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
