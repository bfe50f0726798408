package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hagglebot/hagglebot/internal/availability"
	"github.com/hagglebot/hagglebot/internal/call"
	"github.com/hagglebot/hagglebot/internal/persona"
	"github.com/hagglebot/hagglebot/internal/store"
	"github.com/hagglebot/hagglebot/internal/voice"
)

type periodInput struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type createCallRequest struct {
	PhoneNumber        string        `json:"phoneNumber"`
	ListingDescription string        `json:"listingDescription"`
	FirstName          string        `json:"firstName"`
	Availability       []periodInput `json:"availability"`
	Strategy           string        `json:"negotiationStrategy"`
}

type createCallResponse struct {
	Success    bool   `json:"success"`
	SessionID  string `json:"sessionId"`
	CallID     string `json:"callId,omitempty"`
	Status     string `json:"status,omitempty"`
	ControlURL string `json:"controlUrl,omitempty"`
	ListenURL  string `json:"listenUrl,omitempty"`
}

func (s *Server) createCall(w http.ResponseWriter, r *http.Request) {
	var req createCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	periods := make([]availability.Period, 0, len(req.Availability))
	for _, p := range req.Availability {
		period, err := availability.NewPeriod(p.ID, p.StartDate, p.EndDate, p.StartTime, p.EndTime)
		if err != nil {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		periods = append(periods, period)
	}

	session, err := s.calls.Start(r.Context(), call.StartRequest{
		PhoneNumber:        req.PhoneNumber,
		ListingDescription: req.ListingDescription,
		FirstName:          req.FirstName,
		Availability:       periods,
		Strategy:           persona.ParseStrategy(req.Strategy),
	})
	if err != nil {
		var dispatchErr voice.DispatchError
		switch {
		case errors.Is(err, call.ErrMissingPhoneNumber), errors.Is(err, call.ErrMissingDescription):
			writeError(w, "Phone number and listing description are required", http.StatusBadRequest)
		case errors.Is(err, voice.ErrNotConfigured):
			writeError(w, voice.ErrNotConfigured.Error(), http.StatusInternalServerError)
		case errors.As(err, &dispatchErr):
			writeError(w, dispatchErr.Message, dispatchErr.StatusCode)
		default:
			writeError(w, "failed to initiate call", http.StatusInternalServerError)
		}
		return
	}

	writeJSONStatus(w, createCallResponse{
		Success:    true,
		SessionID:  session.ID,
		CallID:     session.CallID,
		Status:     session.Status,
		ControlURL: session.ControlURL,
		ListenURL:  session.ListenURL,
	}, http.StatusOK)
}

func (s *Server) getCall(w http.ResponseWriter, r *http.Request) {
	session := s.calls.Get(chi.URLParam(r, "id"))
	if session == nil {
		writeError(w, call.ErrSessionNotFound.Error(), http.StatusNotFound)
		return
	}
	writeJSONStatus(w, session, http.StatusOK)
}

type endCallResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
}

func (s *Server) endCall(w http.ResponseWriter, r *http.Request) {
	session, err := s.calls.End(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, call.ErrSessionNotFound) {
			writeError(w, call.ErrSessionNotFound.Error(), http.StatusNotFound)
			return
		}
		writeError(w, "failed to end call", http.StatusInternalServerError)
		return
	}
	writeJSONStatus(w, endCallResponse{
		Success:   true,
		SessionID: session.ID,
		Status:    string(session.State),
	}, http.StatusOK)
}

func (s *Server) listCalls(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListCallRecords(r.Context())
	if err != nil {
		writeError(w, "failed to list calls", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []store.CallRecord{}
	}
	writeJSONStatus(w, records, http.StatusOK)
}
