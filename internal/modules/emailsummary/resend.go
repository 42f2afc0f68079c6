package emailsummary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendAPIBase = "https://api.resend.com"

// Resend sends through the Resend JSON API with a bearer key.
type Resend struct {
	apiKey  string
	apiBase string
	hc      *http.Client
}

func NewResend(apiKey string, timeout time.Duration) *Resend {
	return &Resend{
		apiKey:  apiKey,
		apiBase: resendAPIBase,
		hc:      &http.Client{Timeout: timeout},
	}
}

func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	if r.apiKey == "" {
		return "", ErrNotConfigured
	}

	from := msg.From
	if from == "" {
		from = "SaaSquatch Alerts <onboarding@resend.dev>"
	}

	payload, err := json.Marshal(map[string]any{
		"from":    from,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"html":    msg.HTML,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiBase+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	res, err := r.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return "", &DeliveryError{Provider: "resend", Status: res.StatusCode, Body: string(body)}
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("resend decode response: %w", err)
	}
	return out.ID, nil
}
