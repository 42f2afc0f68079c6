package leads

// Wire shapes of the external lead service.

// SearchFilters is everything a caller may specify for a search. Only
// query/limit/location/use_mock cross the wire in the current contract; the
// remaining fields are enrichment hints and client-side filter inputs.
type SearchFilters struct {
	Query               string   `json:"query"`
	Limit               int      `json:"limit,omitempty"`
	Location            string   `json:"location,omitempty"`
	Industry            string   `json:"industry,omitempty"`
	BusinessType        string   `json:"business_type,omitempty"`
	MinEmployees        *int     `json:"min_employees,omitempty"`
	MaxEmployees        *int     `json:"max_employees,omitempty"`
	MinFitScore         *float64 `json:"min_fit_score,omitempty"`
	ContactInfoRequired bool     `json:"contact_info_required,omitempty"`
	UseMock             *bool    `json:"use_mock,omitempty"`
}

type BaseLead struct {
	Company   string  `json:"company"`
	Industry  *string `json:"industry,omitempty"`
	Address   *string `json:"address,omitempty"`
	BBBRating *string `json:"bbb_rating,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Website   *string `json:"website,omitempty"`
	Source    string  `json:"source"`
	CreatedAt string  `json:"created_at"`
}

type OwnerInfo struct {
	Name        *string `json:"name,omitempty"`
	Title       *string `json:"title,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	LinkedinURL *string `json:"linkedin_url,omitempty"`
}

type EnrichedLead struct {
	BaseLead
	Revenue         *string    `json:"revenue,omitempty"`
	Employees       *int       `json:"employees,omitempty"`
	FoundedYear     *int       `json:"founded_year,omitempty"`
	OwnerInfo       *OwnerInfo `json:"owner_info,omitempty"`
	CompanyLinkedin *string    `json:"company_linkedin,omitempty"`
	ActivityScore   float64    `json:"activity_score"`
	FitScore        float64    `json:"fit_score"`
	Tags            []string   `json:"tags"`
	EnrichedAt      string     `json:"enriched_at"`
}

// UserPreferences are the ICP hints forwarded with an enrich request.
type UserPreferences struct {
	TargetIndustries       []string `json:"target_industries,omitempty"`
	MinEmployees           *int     `json:"min_employees,omitempty"`
	MaxEmployees           *int     `json:"max_employees,omitempty"`
	BusinessTypePreference *string  `json:"business_type_preference,omitempty"`
}

type SearchResponse struct {
	Success bool       `json:"success"`
	Leads   []BaseLead `json:"leads"`
	Count   int        `json:"count"`
	Query   string     `json:"query"`
	Mode    string     `json:"mode"`
}

type EnrichResponse struct {
	Success       bool           `json:"success"`
	EnrichedLeads []EnrichedLead `json:"enriched_leads"`
	Count         int            `json:"count"`
}

type HealthStatus struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}
