package config

import (
	"encoding/json"
	"net/http"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error writes a service error as JSON, mapping the apperror kind to a status
// code. Anything without a kind is a 500 and the message is not leaked.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		status = http.StatusBadRequest
		msg = err.Error()
	case apperror.KindNotFound:
		status = http.StatusNotFound
		msg = err.Error()
	case apperror.KindConflict:
		status = http.StatusConflict
		msg = err.Error()
	case apperror.KindPermission:
		status = http.StatusForbidden
		msg = err.Error()
	}

	JSON(w, status, map[string]string{"error": msg})
}
