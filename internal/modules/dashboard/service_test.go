package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saasquatch/internal/domain"
	"saasquatch/internal/modules/leads"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// stubLeadClient is a scripted lead service. Each call consumes the next
// queued response; running out of script is a test bug.
type stubLeadClient struct {
	searchCalls  int
	enrichCalls  int
	healthErr    error
	searchResps  []searchReply
	enrichResps  []enrichReply
	lastSearch   leads.SearchFilters
	lastEnriched []leads.BaseLead
	lastPrefs    leads.UserPreferences
}

type searchReply struct {
	resp *leads.SearchResponse
	err  error
}

type enrichReply struct {
	resp *leads.EnrichResponse
	err  error
}

func (s *stubLeadClient) Search(ctx context.Context, filters leads.SearchFilters) (*leads.SearchResponse, error) {
	s.lastSearch = filters
	r := s.searchResps[s.searchCalls]
	s.searchCalls++
	return r.resp, r.err
}

func (s *stubLeadClient) Enrich(ctx context.Context, baseLeads []leads.BaseLead, prefs leads.UserPreferences) (*leads.EnrichResponse, error) {
	s.lastEnriched = baseLeads
	s.lastPrefs = prefs
	r := s.enrichResps[s.enrichCalls]
	s.enrichCalls++
	return r.resp, r.err
}

func (s *stubLeadClient) HealthCheck(ctx context.Context) (*leads.HealthStatus, error) {
	if s.healthErr != nil {
		return nil, s.healthErr
	}
	return &leads.HealthStatus{Status: "healthy"}, nil
}

func searchOK(companies ...string) searchReply {
	base := make([]leads.BaseLead, 0, len(companies))
	for _, c := range companies {
		base = append(base, leads.BaseLead{Company: c, Source: "mock"})
	}
	return searchReply{resp: &leads.SearchResponse{Success: true, Leads: base, Count: len(base)}}
}

// readySession brings a fresh service to the state after a successful health
// probe and one search.
func readySession(t *testing.T, stub *stubLeadClient, userID int64, query string) *Service {
	t.Helper()
	svc := NewService(stub)
	health := svc.CheckBackend(context.Background(), userID)
	require.True(t, health.Reachable)
	_, err := svc.Search(context.Background(), userID, query)
	require.NoError(t, err)
	return svc
}

func TestSearch_EmptyQuery(t *testing.T) {
	stub := &stubLeadClient{}
	svc := NewService(stub)
	svc.CheckBackend(context.Background(), 1)

	_, err := svc.Search(context.Background(), 1, "   ")

	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Zero(t, stub.searchCalls, "validation happens before any network call")
}

func TestSearch_RequiresReachableBackend(t *testing.T) {
	stub := &stubLeadClient{healthErr: errors.New("connection refused")}
	svc := NewService(stub)
	health := svc.CheckBackend(context.Background(), 1)
	require.False(t, health.Reachable)

	_, err := svc.Search(context.Background(), 1, "coffee shops")

	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Zero(t, stub.searchCalls)
}

func TestSearch_ReplacesCollectionAndClearsSelection(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{
		searchOK("Alpha", "Beta"),
		searchOK("Gamma"),
	}}
	svc := readySession(t, stub, 1, "first query")

	_, err := svc.ToggleSelect(1, "lead-0")
	require.NoError(t, err)

	view, err := svc.Search(context.Background(), 1, "second query")
	require.NoError(t, err)

	assert.Equal(t, "second query", view.Query)
	assert.Equal(t, 1, view.TotalCount)
	assert.Equal(t, "Gamma", view.Leads[0].Company)
	assert.Equal(t, "lead-0", view.Leads[0].ID, "ids restart per loaded set")
	assert.Empty(t, view.SelectedIDs, "selection does not survive a new search")
}

func TestSearch_FailureKeepsPriorCollection(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{
		searchOK("Alpha", "Beta"),
		{err: &leads.UpstreamError{Op: "search", Status: 502}},
	}}
	svc := readySession(t, stub, 1, "first query")

	_, err := svc.Search(context.Background(), 1, "second query")
	require.Error(t, err)

	view := svc.GetView(1)
	assert.Equal(t, "first query", view.Query)
	assert.Equal(t, 2, view.TotalCount)
}

func TestSearch_ServiceReportedFailure(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{
		{resp: &leads.SearchResponse{Success: false}},
	}}
	svc := NewService(stub)
	svc.CheckBackend(context.Background(), 1)

	_, err := svc.Search(context.Background(), 1, "coffee shops")

	var ue *leads.UpstreamError
	assert.ErrorAs(t, err, &ue)
}

func TestToggleSelect_UnknownLead(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{searchOK("Alpha")}}
	svc := readySession(t, stub, 1, "q")

	_, err := svc.ToggleSelect(1, "lead-99")

	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestToggleSelect_FlipTwiceRestores(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{searchOK("Alpha", "Beta")}}
	svc := readySession(t, stub, 1, "q")

	view, err := svc.ToggleSelect(1, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"lead-1"}, view.SelectedIDs)

	view, err = svc.ToggleSelect(1, "lead-1")
	require.NoError(t, err)
	assert.Empty(t, view.SelectedIDs)
}

func TestToggleSelectAll_DoubleToggle(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{searchOK("Alpha", "Beta", "Gamma")}}
	svc := readySession(t, stub, 1, "q")

	view, err := svc.ToggleSelectAll(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"lead-0", "lead-1", "lead-2"}, view.SelectedIDs)

	view, err = svc.ToggleSelectAll(1)
	require.NoError(t, err)
	assert.Empty(t, view.SelectedIDs)
}

func TestSetFilters_Invalid(t *testing.T) {
	svc := NewService(&stubLeadClient{})

	_, err := svc.SetFilters(1, Filters{HasContactInfo: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidFilters)

	_, err = svc.SetFilters(1, Filters{BusinessType: "B2G"})
	assert.ErrorIs(t, err, ErrInvalidFilters)
}

func TestFilters_OrderPreservingSubsequence(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{searchOK("Alpha", "Beta", "Gamma", "Delta")}}
	svc := readySession(t, stub, 1, "q")

	view, err := svc.SetFilters(1, Filters{MinFitScore: floatPtr(0.0)})
	require.NoError(t, err)

	require.Equal(t, 4, view.FilteredCount)
	for i, l := range view.Leads {
		assert.Equal(t, view.Leads[i].ID, l.ID)
	}
	// filtering twice with the same config yields the same view
	again, err := svc.SetFilters(1, Filters{MinFitScore: floatPtr(0.0)})
	require.NoError(t, err)
	assert.Equal(t, view.Leads, again.Leads)
}

func TestFilters_ApplyIdempotent(t *testing.T) {
	f := Filters{Industry: "ware", MinFitScore: floatPtr(6.5), HasContactInfo: "no"}
	all := []domain.Lead{
		{ID: "lead-0", Industry: "Software", FitScore: floatPtr(7.0)},
		{ID: "lead-1", Industry: "Hardware", FitScore: floatPtr(6.0)},
		{ID: "lead-2", Industry: "Retail", FitScore: floatPtr(9.0)},
	}

	once := f.Apply(all)
	twice := f.Apply(once)

	require.Len(t, once, 1)
	assert.Equal(t, "lead-0", once[0].ID)
	assert.Equal(t, once, twice)
}

func TestFilters_EmployeeBoundsSkipUnenriched(t *testing.T) {
	f := Filters{MinEmployees: intPtr(50), MinFitScore: floatPtr(7.0)}

	unenriched := domain.Lead{ID: "lead-0", Company: "No Data Yet"}
	tooSmall := domain.Lead{ID: "lead-1", Company: "Tiny Co", Employees: intPtr(3)}
	bigEnough := domain.Lead{ID: "lead-2", Company: "Big Co", Employees: intPtr(120), FitScore: floatPtr(6.1)}

	out := f.Apply([]domain.Lead{unenriched, tooSmall, bigEnough})

	// bounds only constrain leads that carry the field
	require.Len(t, out, 1)
	assert.Equal(t, "lead-0", out[0].ID)
}

func TestFilters_ContactInfo(t *testing.T) {
	withContact := domain.Lead{ID: "lead-0", OwnerEmail: strPtr("o@x.com")}
	without := domain.Lead{ID: "lead-1"}
	all := []domain.Lead{withContact, without}

	yes := Filters{HasContactInfo: "yes"}.Apply(all)
	require.Len(t, yes, 1)
	assert.Equal(t, "lead-0", yes[0].ID)

	no := Filters{HasContactInfo: "no"}.Apply(all)
	require.Len(t, no, 1)
	assert.Equal(t, "lead-1", no[0].ID)

	any := Filters{HasContactInfo: "any"}.Apply(all)
	assert.Len(t, any, 2)
}

func TestFilters_IndustrySubstringCaseInsensitive(t *testing.T) {
	saas := domain.Lead{ID: "lead-0", Industry: "B2B SaaS"}
	retail := domain.Lead{ID: "lead-1", Industry: "Retail"}

	out := Filters{Industry: "saas"}.Apply([]domain.Lead{saas, retail})

	require.Len(t, out, 1)
	assert.Equal(t, "lead-0", out[0].ID)
}

func TestEnrich_NoSelection(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{searchOK("Alpha")}}
	svc := readySession(t, stub, 1, "q")

	_, err := svc.Enrich(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Zero(t, stub.enrichCalls)
}

func TestEnrich_MatchedAndFallback(t *testing.T) {
	stub := &stubLeadClient{
		searchResps: []searchReply{searchOK("Bean There", "No Match Co")},
		enrichResps: []enrichReply{{resp: &leads.EnrichResponse{
			Success: true,
			EnrichedLeads: []leads.EnrichedLead{
				{
					BaseLead:  leads.BaseLead{Company: "Bean There", Source: "dashboard"},
					Employees: intPtr(42),
					Revenue:   strPtr("$2M"),
					OwnerInfo: &leads.OwnerInfo{
						Name:  strPtr("Dana Bean"),
						Email: strPtr("dana@beanthere.example"),
					},
					FitScore: 8.7,
					Tags:     []string{"prospect"},
				},
			},
			Count: 1,
		}}},
	}
	svc := readySession(t, stub, 1, "coffee")

	_, err := svc.ToggleSelectAll(1)
	require.NoError(t, err)

	res, err := svc.Enrich(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.EnrichedCount)
	assert.Equal(t, 1, res.FallbackCount)
	assert.Empty(t, res.View.SelectedIDs, "selection is cleared after the merge")

	require.Len(t, res.View.Leads, 2)
	matched := res.View.Leads[0]
	assert.True(t, matched.IsEnriched)
	assert.Equal(t, 42, *matched.Employees)
	assert.Equal(t, "$2M", *matched.Revenue)
	assert.Equal(t, "Dana Bean", *matched.OwnerName)
	assert.Equal(t, 8.7, *matched.FitScore)
	assert.Equal(t, []string{"prospect", "enriched"}, matched.Tags)

	fallback := res.View.Leads[1]
	assert.True(t, fallback.IsEnriched)
	require.NotNil(t, fallback.Employees)
	assert.GreaterOrEqual(t, *fallback.Employees, 10)
	assert.Less(t, *fallback.Employees, 210)
	assert.Contains(t, fallbackRevenueBuckets, *fallback.Revenue)
	assert.Equal(t, "Owner lead-1", *fallback.OwnerName)
	assert.Equal(t, "contact@nomatchco.com", *fallback.OwnerEmail)
	assert.Contains(t, fallback.Tags, "enriched")
}

func TestEnrich_FallbackKeepsSearchScore(t *testing.T) {
	stub := &stubLeadClient{
		searchResps: []searchReply{searchOK("Lone Star")},
		enrichResps: []enrichReply{{resp: &leads.EnrichResponse{Success: true}}},
	}
	svc := readySession(t, stub, 1, "q")

	before := svc.GetView(1).Leads[0].FitScore
	require.NotNil(t, before)

	_, err := svc.ToggleSelect(1, "lead-0")
	require.NoError(t, err)
	res, err := svc.Enrich(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, *before, *res.View.Leads[0].FitScore)
}

func TestEnrich_ErrorKeepsSelectionAndCollection(t *testing.T) {
	stub := &stubLeadClient{
		searchResps: []searchReply{searchOK("Alpha")},
		enrichResps: []enrichReply{{err: &leads.UpstreamError{Op: "enrich", Status: 503}}},
	}
	svc := readySession(t, stub, 1, "q")

	_, err := svc.ToggleSelect(1, "lead-0")
	require.NoError(t, err)

	_, err = svc.Enrich(context.Background(), 1)
	require.Error(t, err)

	view := svc.GetView(1)
	assert.Equal(t, []string{"lead-0"}, view.SelectedIDs)
	assert.False(t, view.Leads[0].IsEnriched)
}

func TestEnrich_EnrichedTagNotDuplicated(t *testing.T) {
	stub := &stubLeadClient{
		searchResps: []searchReply{searchOK("Bean There")},
		enrichResps: []enrichReply{{resp: &leads.EnrichResponse{
			Success: true,
			EnrichedLeads: []leads.EnrichedLead{{
				BaseLead: leads.BaseLead{Company: "Bean There"},
				FitScore: 9.0,
				Tags:     []string{"prospect", "enriched"},
			}},
		}}},
	}
	svc := readySession(t, stub, 1, "q")

	_, err := svc.ToggleSelect(1, "lead-0")
	require.NoError(t, err)

	res, err := svc.Enrich(context.Background(), 1)
	require.NoError(t, err)

	count := 0
	for _, tag := range res.View.Leads[0].Tags {
		if tag == "enriched" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEnrich_SendsPreferencesFromFilters(t *testing.T) {
	stub := &stubLeadClient{
		searchResps: []searchReply{searchOK("Alpha")},
		enrichResps: []enrichReply{{resp: &leads.EnrichResponse{Success: true}}},
	}
	svc := readySession(t, stub, 1, "q")

	_, err := svc.SetFilters(1, Filters{
		Industry:     "SaaS",
		BusinessType: "B2B",
		MinEmployees: intPtr(10),
	})
	require.NoError(t, err)

	_, err = svc.ToggleSelect(1, "lead-0")
	require.NoError(t, err)
	_, err = svc.Enrich(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"SaaS"}, stub.lastPrefs.TargetIndustries)
	require.NotNil(t, stub.lastPrefs.BusinessTypePreference)
	assert.Equal(t, "B2B", *stub.lastPrefs.BusinessTypePreference)
	assert.Equal(t, 10, *stub.lastPrefs.MinEmployees)

	require.Len(t, stub.lastEnriched, 1)
	assert.Equal(t, "dashboard", stub.lastEnriched[0].Source)
}

// parkedSearchClient holds its first search on a channel so a later search
// can overtake it.
type parkedSearchClient struct {
	started chan struct{}
	release chan struct{}
	calls   int32
}

func (p *parkedSearchClient) Search(ctx context.Context, filters leads.SearchFilters) (*leads.SearchResponse, error) {
	if atomic.AddInt32(&p.calls, 1) == 1 {
		close(p.started)
		<-p.release
		return searchOK("Outdated Co").resp, nil
	}
	return searchOK("Newer Co").resp, nil
}

func (p *parkedSearchClient) Enrich(ctx context.Context, baseLeads []leads.BaseLead, prefs leads.UserPreferences) (*leads.EnrichResponse, error) {
	return &leads.EnrichResponse{Success: true}, nil
}

func (p *parkedSearchClient) HealthCheck(ctx context.Context) (*leads.HealthStatus, error) {
	return &leads.HealthStatus{Status: "healthy"}, nil
}

func TestSearch_SupersededResponseDiscarded(t *testing.T) {
	stub := &parkedSearchClient{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewService(stub)
	svc.CheckBackend(context.Background(), 1)

	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Search(context.Background(), 1, "first query")
		firstErr <- err
	}()
	<-stub.started

	// second search completes while the first is still in flight
	view, err := svc.Search(context.Background(), 1, "second query")
	require.NoError(t, err)
	require.Len(t, view.Leads, 1)
	assert.Equal(t, "Newer Co", view.Leads[0].Company)

	close(stub.release)
	assert.ErrorIs(t, <-firstErr, ErrStaleRequest)

	after := svc.GetView(1)
	assert.Equal(t, "second query", after.Query)
	require.Len(t, after.Leads, 1)
	assert.Equal(t, "Newer Co", after.Leads[0].Company, "overtaken response must not overwrite the newer collection")
}

// parkedEnrichClient holds its enrich call so a search can land in between.
type parkedEnrichClient struct {
	started  chan struct{}
	release  chan struct{}
	searches int32
}

func (p *parkedEnrichClient) Search(ctx context.Context, filters leads.SearchFilters) (*leads.SearchResponse, error) {
	if atomic.AddInt32(&p.searches, 1) == 1 {
		return searchOK("Alpha").resp, nil
	}
	return searchOK("Replacement Co").resp, nil
}

func (p *parkedEnrichClient) Enrich(ctx context.Context, baseLeads []leads.BaseLead, prefs leads.UserPreferences) (*leads.EnrichResponse, error) {
	close(p.started)
	<-p.release
	return &leads.EnrichResponse{
		Success: true,
		EnrichedLeads: []leads.EnrichedLead{{
			BaseLead: leads.BaseLead{Company: "Alpha"},
			FitScore: 9.9,
		}},
	}, nil
}

func (p *parkedEnrichClient) HealthCheck(ctx context.Context) (*leads.HealthStatus, error) {
	return &leads.HealthStatus{Status: "healthy"}, nil
}

func TestEnrich_SupersededBySearch(t *testing.T) {
	stub := &parkedEnrichClient{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewService(stub)
	svc.CheckBackend(context.Background(), 1)

	_, err := svc.Search(context.Background(), 1, "first query")
	require.NoError(t, err)
	_, err = svc.ToggleSelect(1, "lead-0")
	require.NoError(t, err)

	enrichErr := make(chan error, 1)
	go func() {
		_, err := svc.Enrich(context.Background(), 1)
		enrichErr <- err
	}()
	<-stub.started

	_, err = svc.Search(context.Background(), 1, "second query")
	require.NoError(t, err)

	close(stub.release)
	assert.ErrorIs(t, <-enrichErr, ErrStaleRequest)

	view := svc.GetView(1)
	require.Len(t, view.Leads, 1)
	assert.Equal(t, "Replacement Co", view.Leads[0].Company)
	assert.False(t, view.Leads[0].IsEnriched, "enrichment for the old collection must not land on the new one")
	assert.Nil(t, view.Leads[0].Employees)
}

func TestSessions_IsolatedPerUser(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{searchOK("Alpha")}}
	svc := readySession(t, stub, 1, "user one query")

	other := svc.GetView(2)
	assert.Empty(t, other.Leads)
	assert.NotEqual(t, svc.GetView(1).SessionID, other.SessionID)
}

func TestFitScoreBreakdown_ViaService(t *testing.T) {
	stub := &stubLeadClient{searchResps: []searchReply{searchOK("Alpha")}}
	svc := readySession(t, stub, 1, "q")

	b, err := svc.FitScoreBreakdown(1, "lead-0")
	require.NoError(t, err)
	assert.NotNil(t, b)

	_, err = svc.FitScoreBreakdown(1, "lead-42")
	assert.ErrorIs(t, err, ErrLeadNotFound)
}
