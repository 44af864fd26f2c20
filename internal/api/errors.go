package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/navikt/zhotel/internal/models"
)

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps booking errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrMalformedInput),
		errors.Is(err, models.ErrInvalidDateRange),
		errors.Is(err, models.ErrEmptyGuestName):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrRoomNotFound),
		errors.Is(err, models.ErrNothingToCancel),
		errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyReserved):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as JSON; internal errors are logged and hidden
func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		message = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
