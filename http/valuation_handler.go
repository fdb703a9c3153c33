package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"policy-valuation/domain"
	"policy-valuation/service"
)

const maxRequestBytes = 1 << 16

type ValuationHandler struct {
	service *service.ValuationService
}

func NewValuationHandler(service *service.ValuationService) *ValuationHandler {
	return &ValuationHandler{service: service}
}

func (h *ValuationHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.ValuationInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Compute(r.Context(), input)
	if err != nil {
		if service.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("[%s] valuation failed: %v", RequestIDFrom(r.Context()), err)
		http.Error(w, "unable to compute valuation", http.StatusInternalServerError)
		return
	}

	// Encode into a buffer first so a failure does not leave a 200 header behind.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		log.Printf("[%s] encoding response: %v", RequestIDFrom(r.Context()), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[%s] writing response: %v", RequestIDFrom(r.Context()), err)
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(`{"status":"ok"}` + "\n")); err != nil {
		log.Printf("[%s] writing health response: %v", RequestIDFrom(r.Context()), err)
	}
}
