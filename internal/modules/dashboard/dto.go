package dashboard

import "saasquatch/internal/domain"

type SearchRequest struct {
	Query string `json:"query"`
}

// View is the dashboard state as seen by the client: the filtered leads plus
// enough bookkeeping to render selection and connectivity.
type View struct {
	SessionID        string        `json:"session_id"`
	Query            string        `json:"query"`
	Leads            []domain.Lead `json:"leads"`
	TotalCount       int           `json:"total_count"`
	FilteredCount    int           `json:"filtered_count"`
	SelectedIDs      []string      `json:"selected_ids"`
	Filters          Filters       `json:"filters"`
	BackendReachable bool          `json:"backend_reachable"`
}

type EnrichResult struct {
	EnrichedCount int  `json:"enriched_count"`
	FallbackCount int  `json:"fallback_count"`
	View          View `json:"view"`
}

type HealthResult struct {
	Reachable bool   `json:"reachable"`
	Status    string `json:"status,omitempty"`
}
