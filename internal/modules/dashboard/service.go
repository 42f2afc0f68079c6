package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"saasquatch/internal/domain"
	"saasquatch/internal/modules/leads"
)

var fallbackRevenueBuckets = []string{"$500K - $1M", "$1M - $5M", "$5M - $10M"}

// Service owns the dashboard workflow: search, selection, enrichment and the
// derived views. State transitions happen under the session lock; network
// calls run outside it, and a response is only applied when its generation
// is still the latest one issued.
type Service struct {
	client   LeadClientInterface
	sessions *SessionStore
}

func NewService(client LeadClientInterface) *Service {
	return &Service{
		client:   client,
		sessions: NewSessionStore(),
	}
}

// CheckBackend probes the lead service and records reachability; search is
// gated on the last recorded result.
func (s *Service) CheckBackend(ctx context.Context, userID int64) HealthResult {
	sess := s.sessions.Get(userID)

	status, err := s.client.HealthCheck(ctx)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.backendReachable = err == nil

	res := HealthResult{Reachable: err == nil}
	if status != nil {
		res.Status = status.Status
	}
	return res
}

// Search replaces the whole lead collection with fresh results and clears
// the selection. On failure the prior collection stays intact. A response
// that arrives after a newer search has been issued is discarded.
func (s *Service) Search(ctx context.Context, userID int64, query string) (*View, error) {
	sess := s.sessions.Get(userID)

	sess.mu.Lock()
	if strings.TrimSpace(query) == "" {
		sess.mu.Unlock()
		return nil, ErrEmptyQuery
	}
	if !sess.backendReachable {
		sess.mu.Unlock()
		return nil, ErrBackendUnavailable
	}

	sess.generation++
	gen := sess.generation

	filters := leads.SearchFilters{
		Query:               query,
		Limit:               20,
		Location:            sess.filters.Location,
		Industry:            sess.filters.Industry,
		BusinessType:        sess.filters.BusinessType,
		MinEmployees:        sess.filters.MinEmployees,
		MaxEmployees:        sess.filters.MaxEmployees,
		MinFitScore:         sess.filters.MinFitScore,
		ContactInfoRequired: sess.filters.HasContactInfo == "yes",
	}
	sess.mu.Unlock()

	resp, err := s.client.Search(ctx, filters)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if gen != sess.generation {
		return nil, ErrStaleRequest
	}
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &leads.UpstreamError{Op: "search", Err: errors.New("service reported failure")}
	}

	sess.query = query
	sess.leads = leads.MapSearchResults(resp.Leads)
	sess.selected = make(map[string]struct{})

	view := sess.view()
	return &view, nil
}

// ToggleSelect flips one lead in or out of the selection set.
func (s *Service) ToggleSelect(userID int64, leadID string) (*View, error) {
	sess := s.sessions.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.findLead(leadID) == nil {
		return nil, ErrLeadNotFound
	}

	if _, ok := sess.selected[leadID]; ok {
		delete(sess.selected, leadID)
	} else {
		sess.selected[leadID] = struct{}{}
	}

	view := sess.view()
	return &view, nil
}

// ToggleSelectAll selects every lead in the filtered view, or clears the
// selection when everything filtered is already counted as selected.
func (s *Service) ToggleSelectAll(userID int64) (*View, error) {
	sess := s.sessions.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	filtered := sess.filters.Apply(sess.leads)
	if len(sess.selected) == len(filtered) {
		sess.selected = make(map[string]struct{})
	} else {
		sess.selected = make(map[string]struct{}, len(filtered))
		for _, l := range filtered {
			sess.selected[l.ID] = struct{}{}
		}
	}

	view := sess.view()
	return &view, nil
}

// SetFilters replaces the filter configuration. The filtered view is derived
// on demand, so this never touches the stored leads.
func (s *Service) SetFilters(userID int64, f Filters) (*View, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	sess := s.sessions.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.filters = f
	view := sess.view()
	return &view, nil
}

// Enrich sends the selected leads to the enrichment service and merges the
// results back. Matching is by exact company name, first match wins; leads
// with no match get a synthetic fallback fill. The selection is cleared
// unconditionally once the merge step runs, matched or not.
func (s *Service) Enrich(ctx context.Context, userID int64) (*EnrichResult, error) {
	sess := s.sessions.Get(userID)

	sess.mu.Lock()
	if len(sess.selected) == 0 {
		sess.mu.Unlock()
		return nil, ErrNoSelection
	}

	gen := sess.generation
	selectedSet := make(map[string]struct{}, len(sess.selected))
	baseLeads := make([]leads.BaseLead, 0, len(sess.selected))
	now := time.Now().UTC().Format(time.RFC3339)
	for _, l := range sess.leads {
		if _, ok := sess.selected[l.ID]; !ok {
			continue
		}
		selectedSet[l.ID] = struct{}{}
		industry := l.Industry
		address := l.Address
		website := l.Website
		baseLeads = append(baseLeads, leads.BaseLead{
			Company:   l.Company,
			Industry:  &industry,
			Address:   &address,
			Phone:     l.Phone,
			Website:   &website,
			Source:    "dashboard",
			CreatedAt: now,
		})
	}

	prefs := leads.UserPreferences{
		MinEmployees: sess.filters.MinEmployees,
		MaxEmployees: sess.filters.MaxEmployees,
	}
	if sess.filters.Industry != "" {
		prefs.TargetIndustries = []string{sess.filters.Industry}
	}
	if sess.filters.BusinessType != "" {
		bt := sess.filters.BusinessType
		prefs.BusinessTypePreference = &bt
	}
	sess.mu.Unlock()

	resp, err := s.client.Enrich(ctx, baseLeads, prefs)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if gen != sess.generation {
		return nil, ErrStaleRequest
	}
	if err != nil {
		// collection and selection stay intact; caller may retry
		return nil, err
	}
	if !resp.Success {
		return nil, &leads.UpstreamError{Op: "enrich", Err: errors.New("service reported failure")}
	}

	result := &EnrichResult{}
	for i := range sess.leads {
		l := &sess.leads[i]
		if _, ok := selectedSet[l.ID]; !ok {
			continue
		}
		if match := findByCompany(resp.EnrichedLeads, l.Company); match != nil {
			applyEnrichment(l, match)
			result.EnrichedCount++
		} else {
			applyFallback(l)
			result.FallbackCount++
		}
	}

	sess.selected = make(map[string]struct{})

	result.View = sess.view()
	return result, nil
}

// GetView returns the current dashboard state.
func (s *Service) GetView(userID int64) View {
	sess := s.sessions.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view()
}

// FitScoreBreakdown projects one lead's score into display buckets.
func (s *Service) FitScoreBreakdown(userID int64, leadID string) (*domain.FitScoreBreakdown, error) {
	sess := s.sessions.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	l := sess.findLead(leadID)
	if l == nil {
		return nil, ErrLeadNotFound
	}
	b := domain.BreakdownFitScore(*l)
	if b == nil {
		return nil, ErrNoFitScore
	}
	return b, nil
}

// view builds the client-facing state; callers must hold the session lock.
func (s *Session) view() View {
	filtered := s.filters.Apply(s.leads)
	return View{
		SessionID:        s.id,
		Query:            s.query,
		Leads:            filtered,
		TotalCount:       len(s.leads),
		FilteredCount:    len(filtered),
		SelectedIDs:      s.selectedIDs(),
		Filters:          s.filters,
		BackendReachable: s.backendReachable,
	}
}

func findByCompany(enriched []leads.EnrichedLead, company string) *leads.EnrichedLead {
	for i := range enriched {
		if enriched[i].Company == company {
			return &enriched[i]
		}
	}
	return nil
}

func applyEnrichment(l *domain.Lead, e *leads.EnrichedLead) {
	l.Employees = e.Employees
	l.Revenue = e.Revenue
	if e.OwnerInfo != nil {
		l.OwnerName = e.OwnerInfo.Name
		l.OwnerEmail = e.OwnerInfo.Email
		l.OwnerLinkedin = e.OwnerInfo.LinkedinURL
	}
	score := e.FitScore
	l.FitScore = &score
	l.Tags = appendTagOnce(e.Tags, "enriched")
	l.IsEnriched = true
}

// applyFallback synthesizes enrichment data when the service returned no
// record for this company. The search-time fit score is kept.
func applyFallback(l *domain.Lead) {
	employees := rand.Intn(200) + 10
	revenue := fallbackRevenueBuckets[rand.Intn(len(fallbackRevenueBuckets))]
	ownerName := fmt.Sprintf("Owner %s", l.ID)
	ownerEmail := fmt.Sprintf("contact@%s.com", stripSpaces(strings.ToLower(l.Company)))

	l.Employees = &employees
	l.Revenue = &revenue
	l.OwnerName = &ownerName
	l.OwnerEmail = &ownerEmail
	l.Tags = appendTagOnce(l.Tags, "enriched")
	l.IsEnriched = true
}

func appendTagOnce(tags []string, tag string) []string {
	out := make([]string, 0, len(tags)+1)
	out = append(out, tags...)
	for _, t := range out {
		if t == tag {
			return out
		}
	}
	return append(out, tag)
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
