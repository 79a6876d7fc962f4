package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleRoot(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	HandleRoot().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "slot bot is alive", w.Body.String())
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestFormatValidationError(t *testing.T) {
	tests := []struct {
		name string
		req  any
		want map[string]string
	}{
		{"bad account id", ClaimDailyRequest{AccountID: "has\ttab"}, map[string]string{"account_id": "Invalid account id"}},
		{"missing account id", ClaimDailyRequest{}, map[string]string{"account_id": "This field is required"}},
		{"too long", ClaimDailyRequest{AccountID: strings.Repeat("x", 65)}, map[string]string{"account_id": "Must be at most 64 characters"}},
		{"non-positive credit", AdminCreditRequest{RequesterID: "a", TargetID: "b"}, map[string]string{"amount": "Must be greater than 0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValidationError(ValidateRequest(tt.req)))
		})
	}

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
