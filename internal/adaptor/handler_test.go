package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"spa-booking/internal/usecase"

	"go.uber.org/zap"
)

func TestHandleServiceErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errors.New("booking SPA-1 not found"), http.StatusNotFound},
		{"validation", errors.New("validation failed: name is required"), http.StatusBadRequest},
		{"invalid input", errors.New("invalid booking ID format x"), http.StatusBadRequest},
		{"conflict", errors.New("booking already cancelled"), http.StatusConflict},
		{"invalid state", errors.New("cannot cancel a completed booking"), http.StatusBadRequest},
		{"unclassified", errors.New("pg connection reset"), http.StatusInternalServerError},
		{
			"wrapped step gate",
			fmt.Errorf("submit: %w", &usecase.StepIncompleteError{
				Step:   "contact_info",
				Fields: map[string]string{"email": "A valid email is required"},
			}),
			http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tt.err, "TestOp")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandleServiceErrorStepGatePayload(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(zap.NewNop(), rec, &usecase.StepIncompleteError{
		Step:   "select_services",
		Fields: map[string]string{"serviceIds": "Select at least one service"},
	}, "Next")

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Errors["serviceIds"] == "" {
		t.Errorf("field errors missing from body: %s", rec.Body.String())
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		fwd    string
		want   string
	}{
		{"direct", "203.0.113.9:51234", "", "203.0.113.9"},
		{"behind proxy", "10.0.0.1:80", "198.51.100.7", "198.51.100.7"},
		{"proxy chain takes the first hop", "10.0.0.1:80", "198.51.100.7, 10.0.0.2", "198.51.100.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			if tt.fwd != "" {
				r.Header.Set("X-Forwarded-For", tt.fwd)
			}
			if got := clientIP(r); got != tt.want {
				t.Errorf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
