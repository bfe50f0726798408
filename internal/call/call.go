// Package call owns the local call-session state machine and drives the
// voice dispatcher. Local state is authoritative: ending a call always
// succeeds locally even when the remote termination signal fails.
package call

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hagglebot/hagglebot/internal/availability"
	"github.com/hagglebot/hagglebot/internal/events"
	"github.com/hagglebot/hagglebot/internal/persona"
	"github.com/hagglebot/hagglebot/internal/phone"
	"github.com/hagglebot/hagglebot/internal/store"
	"github.com/hagglebot/hagglebot/internal/voice"
)

type State string

const (
	StateIdle       State = "idle"
	StateConnecting State = "connecting"
	StateActive     State = "active"
	StateEnded      State = "ended"
)

var (
	ErrMissingPhoneNumber = errors.New("phone number is required")
	ErrMissingDescription = errors.New("listing description is required")
	ErrSessionNotFound    = errors.New("call session not found")
)

// Dispatcher is the slice of the voice client the controller needs.
type Dispatcher interface {
	CreateCall(ctx context.Context, req voice.CallRequest) (*voice.Call, error)
	EndCall(ctx context.Context, controlURL string) error
}

// Session is the local view of one call. CallID and the monitor URLs are
// cleared the moment the session ends.
type Session struct {
	ID            string                `json:"sessionId"`
	State         State                 `json:"state"`
	CallID        string                `json:"callId,omitempty"`
	Status        string                `json:"status,omitempty"`
	ControlURL    string                `json:"controlUrl,omitempty"`
	ListenURL     string                `json:"listenUrl,omitempty"`
	PhoneNumber   string                `json:"phoneNumber"`
	BuyerName     string                `json:"buyerName,omitempty"`
	Strategy      persona.Strategy      `json:"strategy"`
	FailureReason string                `json:"failureReason,omitempty"`
	Availability  []availability.Period `json:"-"`
}

type StartRequest struct {
	PhoneNumber        string
	ListingDescription string
	FirstName          string
	Availability       []availability.Period
	Strategy           persona.Strategy
}

type Controller struct {
	dispatcher Dispatcher
	store      store.Store
	broker     *events.Broker

	mu       sync.Mutex
	sessions map[string]*Session
	seq      map[string]int64
}

func NewController(dispatcher Dispatcher, st store.Store, broker *events.Broker) *Controller {
	return &Controller{
		dispatcher: dispatcher,
		store:      st,
		broker:     broker,
		sessions:   map[string]*Session{},
		seq:        map[string]int64{},
	}
}

// Start validates input, builds the persona prompt, and dispatches the call.
// Validation failures never reach the dispatcher. A dispatch failure returns
// the session to idle with the failure message retained for display.
func (c *Controller) Start(ctx context.Context, req StartRequest) (*Session, error) {
	if strings.TrimSpace(req.PhoneNumber) == "" {
		return nil, ErrMissingPhoneNumber
	}
	if strings.TrimSpace(req.ListingDescription) == "" {
		return nil, ErrMissingDescription
	}

	session := &Session{
		ID:           uuid.New().String(),
		State:        StateConnecting,
		PhoneNumber:  phone.Normalize(req.PhoneNumber),
		BuyerName:    strings.TrimSpace(req.FirstName),
		Strategy:     req.Strategy,
		Availability: req.Availability,
	}
	c.mu.Lock()
	c.sessions[session.ID] = session
	c.mu.Unlock()

	now := timestamp()
	if err := c.store.CreateCallRecord(ctx, store.CallRecord{
		ID:          session.ID,
		PhoneNumber: session.PhoneNumber,
		BuyerName:   session.BuyerName,
		Strategy:    string(session.Strategy),
		Status:      string(StateConnecting),
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		log.Printf("call: record create failed for session %s: %v", session.ID, err)
	}
	c.publish(session.ID, "call.connecting", map[string]any{
		"phone_number": session.PhoneNumber,
		"strategy":     string(session.Strategy),
	})

	prompt := persona.Build(persona.Context{
		BuyerName:     req.FirstName,
		ListingReport: req.ListingDescription,
		Availability:  availability.Format(req.Availability),
		Strategy:      req.Strategy,
	})

	dispatched, err := c.dispatcher.CreateCall(ctx, voice.CallRequest{
		CustomerNumber: session.PhoneNumber,
		SystemPrompt:   prompt,
	})
	if err != nil {
		c.mu.Lock()
		session.State = StateIdle
		session.FailureReason = err.Error()
		c.mu.Unlock()
		c.updateRecord(ctx, session, "failed", err.Error())
		c.publish(session.ID, "call.failed", map[string]any{"error": err.Error()})
		return c.snapshot(session.ID), err
	}

	c.mu.Lock()
	session.State = StateActive
	session.CallID = dispatched.ID
	session.Status = dispatched.Status
	session.ControlURL = dispatched.ControlURL
	session.ListenURL = dispatched.ListenURL
	c.mu.Unlock()
	c.updateRecord(ctx, session, string(StateActive), "")
	c.publish(session.ID, "call.active", map[string]any{
		"call_id": dispatched.ID,
		"status":  dispatched.Status,
	})
	return c.snapshot(session.ID), nil
}

// End transitions the session to ended and clears its call identifiers
// unconditionally, then fires the remote end-call signal if a control URL was
// known. The remote leg is fire-and-forget: failure is logged, never surfaced.
func (c *Controller) End(ctx context.Context, sessionID string) (*Session, error) {
	c.mu.Lock()
	session, ok := c.sessions[sessionID]
	if !ok {
		c.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	controlURL := session.ControlURL
	session.State = StateEnded
	session.CallID = ""
	session.ControlURL = ""
	session.ListenURL = ""
	session.Status = string(StateEnded)
	c.mu.Unlock()

	c.updateRecord(ctx, session, string(StateEnded), "")
	c.publish(sessionID, "call.ended", map[string]any{})

	if controlURL != "" {
		if err := c.dispatcher.EndCall(ctx, controlURL); err != nil {
			log.Printf("call: remote end-call failed for session %s: %v", sessionID, err)
		}
	}
	return c.snapshot(sessionID), nil
}

// Get returns a copy of the session, or nil when unknown.
func (c *Controller) Get(sessionID string) *Session {
	return c.snapshot(sessionID)
}

func (c *Controller) snapshot(sessionID string) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, ok := c.sessions[sessionID]
	if !ok {
		return nil
	}
	cloned := *session
	return &cloned
}

func (c *Controller) updateRecord(ctx context.Context, session *Session, status string, failureReason string) {
	c.mu.Lock()
	record := store.CallRecord{
		ID:            session.ID,
		CallID:        session.CallID,
		PhoneNumber:   session.PhoneNumber,
		BuyerName:     session.BuyerName,
		Strategy:      string(session.Strategy),
		Status:        status,
		ControlURL:    session.ControlURL,
		ListenURL:     session.ListenURL,
		FailureReason: failureReason,
		UpdatedAt:     timestamp(),
	}
	c.mu.Unlock()
	if err := c.store.UpdateCallRecord(ctx, record); err != nil {
		log.Printf("call: record update failed for session %s: %v", session.ID, err)
	}
}

func (c *Controller) publish(sessionID string, eventType string, payload map[string]any) {
	c.mu.Lock()
	c.seq[sessionID]++
	seq := c.seq[sessionID]
	c.mu.Unlock()
	c.broker.Publish(events.CallEvent{
		SessionID: sessionID,
		Seq:       seq,
		Type:      events.NormalizeType(eventType),
		Ts:        timestamp(),
		Payload:   payload,
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
