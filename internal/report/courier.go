package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Harisholympas/echoes-within1/internal/logging"
)

// SendState tracks the transmission affordance on the result screen. A send
// that succeeded stays Sent for the rest of the session; a failed send goes
// back to re-enabled only through a fresh user action, never automatically.
type SendState int

const (
	SendIdle SendState = iota
	SendPending
	SendSucceeded
	SendFailed
)

// String returns a short human label for the state.
func (s SendState) String() string {
	switch s {
	case SendIdle:
		return "idle"
	case SendPending:
		return "pending"
	case SendSucceeded:
		return "sent"
	case SendFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CanSend reports whether a new send may be initiated from this state.
func (s SendState) CanSend() bool {
	return s == SendIdle || s == SendFailed
}

// Courier posts finished readings to a configured webhook. A nil or
// disabled courier makes every send a no-op error, which the UI renders as
// the affordance simply not existing.
type Courier struct {
	url    string
	client *http.Client
}

// NewCourier builds a courier for the given webhook URL. An empty URL yields
// a disabled courier.
func NewCourier(url string, timeout time.Duration) *Courier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Courier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether a webhook is configured.
func (c *Courier) Enabled() bool {
	return c != nil && c.url != ""
}

// Send posts the reading as JSON. It blocks until the attempt finishes, so
// callers run it off the UI loop and feed the result back as a message.
func (c *Courier) Send(ctx context.Context, r Reading) error {
	if !c.Enabled() {
		return fmt.Errorf("no webhook configured")
	}

	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode reading: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logging.ReportError("send reading %s: %v", r.ID, err)
		return fmt.Errorf("failed to send reading: %w", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.ReportError("send reading %s: endpoint returned %s", r.ID, resp.Status)
		return fmt.Errorf("endpoint returned %s", resp.Status)
	}

	logging.Report("sent reading %s to webhook", r.ID)
	return nil
}
