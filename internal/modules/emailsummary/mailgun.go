package emailsummary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const mailgunAPIBase = "https://api.mailgun.net/v3"

// Mailgun sends through the Mailgun messages API: multipart form fields,
// basic auth with the literal user "api", domain-scoped URL.
type Mailgun struct {
	domain  string
	apiKey  string
	apiBase string
	hc      *http.Client
}

func NewMailgun(domain, apiKey string, timeout time.Duration) *Mailgun {
	return &Mailgun{
		domain:  domain,
		apiKey:  apiKey,
		apiBase: mailgunAPIBase,
		hc:      &http.Client{Timeout: timeout},
	}
}

func (m *Mailgun) Send(ctx context.Context, msg Message) (string, error) {
	if m.domain == "" || m.apiKey == "" {
		return "", ErrNotConfigured
	}

	from := msg.From
	if from == "" {
		from = fmt.Sprintf("SaaSquatch Alerts <noreply@%s>", m.domain)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, value := range map[string]string{
		"from":    from,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
	} {
		if err := w.WriteField(field, value); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/messages", m.apiBase, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.SetBasicAuth("api", m.apiKey)

	res, err := m.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("mailgun send: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return "", &DeliveryError{Provider: "mailgun", Status: res.StatusCode, Body: string(body)}
	}

	var out struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("mailgun decode response: %w", err)
	}
	return out.ID, nil
}
