package emailsummary

import (
	"context"
	"fmt"

	"saasquatch/internal/domain"
)

// Service renders the summary and dispatches it through the configured
// provider.
type Service struct {
	provider  Provider
	fromEmail string
	appURL    string
}

func NewService(provider Provider, fromEmail, appURL string) *Service {
	return &Service{
		provider:  provider,
		fromEmail: fromEmail,
		appURL:    appURL,
	}
}

// SendSummary builds the report for the given leads and sends it. Returns
// the provider-assigned message id.
func (s *Service) SendSummary(ctx context.Context, toEmail string, leadList []domain.Lead) (string, error) {
	topLeads := TopLeads(leadList)

	html, err := Render(leadList, topLeads, s.appURL)
	if err != nil {
		return "", err
	}

	msg := Message{
		To:      toEmail,
		Subject: fmt.Sprintf("Lead Discovery Summary - %d Prospects Found", len(leadList)),
		HTML:    html,
	}
	if s.fromEmail != "" {
		msg.From = fmt.Sprintf("SaaSquatch Alerts <%s>", s.fromEmail)
	}

	return s.provider.Send(ctx, msg)
}
