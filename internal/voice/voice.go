// Package voice dispatches outbound calls to the voice-agent provider and
// signals best-effort termination over the per-call control URL.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultFirstMessage opens every negotiation call.
const DefaultFirstMessage = "Hi! I'm calling about your listing, can you talk about it right now?"

type Config struct {
	APIKey        string
	BaseURL       string
	PhoneNumberID string
	Model         string
	VoiceProvider string
	VoiceID       string
}

type Client struct {
	apiKey        string
	baseURL       string
	phoneNumberID string
	model         string
	voiceProvider string
	voiceID       string
	client        *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.vapi.ai"
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4.1-mini"
	}
	voiceProvider := cfg.VoiceProvider
	if voiceProvider == "" {
		voiceProvider = "11labs"
	}
	voiceID := cfg.VoiceID
	if voiceID == "" {
		voiceID = "burt"
	}
	return &Client{
		apiKey:        cfg.APIKey,
		baseURL:       strings.TrimRight(baseURL, "/"),
		phoneNumberID: cfg.PhoneNumberID,
		model:         model,
		voiceProvider: voiceProvider,
		voiceID:       voiceID,
		client:        &http.Client{Timeout: 30 * time.Second},
	}
}

// CallRequest describes one outbound call: where to dial and the transient
// assistant persona driving the conversation.
type CallRequest struct {
	CustomerNumber string
	SystemPrompt   string
	FirstMessage   string
}

// Call is the provider's handle for a dispatched call. ControlURL and
// ListenURL are optional; the provider may omit monitoring support.
type Call struct {
	ID         string
	Status     string
	ControlURL string
	ListenURL  string
}

// CreateCall submits one call-creation request. Missing credentials
// short-circuit before any network I/O.
func (c *Client) CreateCall(ctx context.Context, req CallRequest) (*Call, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrNotConfigured)
	}
	if c.phoneNumberID == "" {
		return nil, fmt.Errorf("%w: missing outbound phone number ID", ErrNotConfigured)
	}
	firstMessage := req.FirstMessage
	if firstMessage == "" {
		firstMessage = DefaultFirstMessage
	}

	payload := map[string]any{
		"assistant": map[string]any{
			"model": map[string]any{
				"provider": "openai",
				"model":    c.model,
				"messages": []map[string]string{
					{"role": "system", "content": req.SystemPrompt},
				},
			},
			"voice": map[string]any{
				"provider": c.voiceProvider,
				"voiceId":  c.voiceID,
			},
			"firstMessage": firstMessage,
		},
		"phoneNumberId": c.phoneNumberID,
		"customer": map[string]any{
			"number": req.CustomerNumber,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/call", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Message string `json:"message"`
		Monitor struct {
			ControlURL string `json:"controlUrl"`
			ListenURL  string `json:"listenUrl"`
		} `json:"monitor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil && resp.StatusCode < 400 {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		message := parsed.Message
		if message == "" {
			message = "failed to initiate call"
		}
		return nil, DispatchError{StatusCode: resp.StatusCode, Message: message}
	}
	return &Call{
		ID:         parsed.ID,
		Status:     parsed.Status,
		ControlURL: parsed.Monitor.ControlURL,
		ListenURL:  parsed.Monitor.ListenURL,
	}, nil
}

// EndCall posts an end-call signal to the control URL returned at creation.
// The control contract is owned by the provider; callers treat failures as
// advisory only.
func (c *Client) EndCall(ctx context.Context, controlURL string) error {
	if controlURL == "" {
		return fmt.Errorf("no control URL for call")
	}
	body := []byte(`{"type":"end-call"}`)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, controlURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("end-call request failed: %s", resp.Status)
	}
	return nil
}
