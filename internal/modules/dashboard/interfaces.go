package dashboard

import (
	"context"

	"saasquatch/internal/modules/leads"
)

// LeadClientInterface lists the outbound calls the dashboard makes.
type LeadClientInterface interface {
	Search(ctx context.Context, filters leads.SearchFilters) (*leads.SearchResponse, error)
	Enrich(ctx context.Context, baseLeads []leads.BaseLead, prefs leads.UserPreferences) (*leads.EnrichResponse, error)
	HealthCheck(ctx context.Context) (*leads.HealthStatus, error)
}
