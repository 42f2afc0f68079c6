package domain

// BusinessType classifies who a lead sells to.
type BusinessType string

const (
	BusinessTypeB2B BusinessType = "B2B"
	BusinessTypeB2C BusinessType = "B2C"
)

// Lead is one discovered business in the current working set.
//
// The ID is stable only within one loaded set ("lead-0", "lead-1", ...);
// each search replaces the whole collection. Employees, Revenue and the
// owner fields stay nil until enrichment completes for the lead, and once
// IsEnriched is set they never implicitly revert to nil.
type Lead struct {
	ID            string       `json:"id"`
	Company       string       `json:"company"`
	Industry      string       `json:"industry"`
	Website       string       `json:"website"`
	Phone         *string      `json:"phone,omitempty"`
	Address       string       `json:"address"`
	Employees     *int         `json:"employees,omitempty"`
	Revenue       *string      `json:"revenue,omitempty"`
	OwnerName     *string      `json:"owner_name,omitempty"`
	OwnerEmail    *string      `json:"owner_email,omitempty"`
	OwnerLinkedin *string      `json:"owner_linkedin,omitempty"`
	FitScore      *float64     `json:"fit_score,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	BusinessType  BusinessType `json:"business_type,omitempty"`
	IsEnriched    bool         `json:"is_enriched"`
}

// HasContact reports whether an owner email was found for the lead.
func (l Lead) HasContact() bool {
	return l.OwnerEmail != nil && *l.OwnerEmail != ""
}

// FitScoreBreakdown is a display-only decomposition of a lead's fit score
// into five buckets. The buckets are derived from the single score (plus
// enrichment and website presence) and intentionally do not sum back to it.
type FitScoreBreakdown struct {
	IndustryMatch  float64 `json:"industry_match"`
	CompanySize    float64 `json:"company_size"`
	ContactQuality float64 `json:"contact_quality"`
	WebsiteQuality float64 `json:"website_quality"`
	LocationMatch  float64 `json:"location_match"`
}

// BreakdownFitScore projects a lead's fit score into display buckets.
// Returns nil when the lead has no fit score yet.
func BreakdownFitScore(l Lead) *FitScoreBreakdown {
	if l.FitScore == nil {
		return nil
	}

	score := *l.FitScore
	b := &FitScoreBreakdown{
		IndustryMatch:  min(2.5, score*0.25),
		CompanySize:    min(2.0, score*0.20),
		ContactQuality: 0.5,
		WebsiteQuality: 0,
		LocationMatch:  min(2.0, score*0.20),
	}
	if l.IsEnriched && l.HasContact() {
		b.ContactQuality = 2.0
	}
	if l.Website != "" {
		b.WebsiteQuality = 1.5
	}
	return b
}
