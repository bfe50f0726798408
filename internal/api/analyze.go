package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/hagglebot/hagglebot/internal/listing"
	"github.com/hagglebot/hagglebot/internal/store"
)

type analyzeRequest struct {
	URL          string `json:"url"`
	ContactPhone string `json:"contactPhone"`
}

type analyzeResponse struct {
	Description  string  `json:"description"`
	URL          string  `json:"url"`
	ContactPhone *string `json:"contactPhone"`
	AnalyzedAt   string  `json:"analyzedAt"`
	ImageCount   int     `json:"imageCount"`
}

func (s *Server) analyzeListing(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req.URL, req.ContactPhone)
	if err != nil {
		var invalidURL listing.InvalidURLError
		var fetchErr listing.FetchError
		switch {
		case errors.As(err, &invalidURL):
			writeError(w, invalidURL.Error(), http.StatusBadRequest)
		case errors.As(err, &fetchErr):
			writeError(w, fetchErr.Error(), http.StatusBadRequest)
		case errors.Is(err, listing.ErrAnalysisEmpty):
			writeError(w, listing.ErrAnalysisEmpty.Error(), http.StatusInternalServerError)
		default:
			writeError(w, "failed to analyze listing", http.StatusInternalServerError)
		}
		return
	}

	if err := s.store.CreateAnalysis(r.Context(), store.Analysis{
		ID:           report.ID,
		SourceURL:    report.SourceURL,
		ContactPhone: report.ContactPhone,
		Description:  report.Description,
		ImageCount:   report.ImageCount,
		CreatedAt:    report.AnalyzedAt.Format(time.RFC3339Nano),
	}); err != nil {
		log.Printf("persist analysis %s: %v", report.ID, err)
	}

	var contactPhone *string
	if report.ContactPhone != "" {
		contactPhone = &report.ContactPhone
	}
	writeJSONStatus(w, analyzeResponse{
		Description:  report.Description,
		URL:          report.SourceURL,
		ContactPhone: contactPhone,
		AnalyzedAt:   report.AnalyzedAt.Format(time.RFC3339),
		ImageCount:   report.ImageCount,
	}, http.StatusOK)
}

func (s *Server) listAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := s.store.ListAnalyses(r.Context())
	if err != nil {
		writeError(w, "failed to list analyses", http.StatusInternalServerError)
		return
	}
	if analyses == nil {
		analyses = []store.Analysis{}
	}
	writeJSONStatus(w, analyses, http.StatusOK)
}
