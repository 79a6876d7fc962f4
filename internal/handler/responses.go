package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sync"

	"github.com/osse101/SlotBot_Go/internal/cooldown"
	"github.com/osse101/SlotBot_Go/internal/domain"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a game error to a status code and a player-facing
// message. Validation, funds and timing errors already carry text fit for
// players, so their own message is passed through.
func respondServiceError(w http.ResponseWriter, err error) {
	var onCooldown cooldown.ErrOnCooldown
	var claimed cooldown.ErrAlreadyClaimed

	switch {
	case errors.As(err, &onCooldown):
		setRetryAfter(w, onCooldown.Remaining.Seconds())
		respondError(w, http.StatusTooManyRequests, err.Error())
	case errors.As(err, &claimed):
		setRetryAfter(w, claimed.ResetIn.Seconds())
		respondError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(w, http.StatusForbidden, ErrMsgForbidden)
	case errors.Is(err, domain.ErrDeliveryFailure):
		respondError(w, http.StatusServiceUnavailable, ErrMsgBetRefunded)
	default:
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
	}
}

func setRetryAfter(w http.ResponseWriter, seconds float64) {
	w.Header().Set(HeaderRetryAfter, fmt.Sprintf("%d", int64(math.Ceil(seconds))))
}
