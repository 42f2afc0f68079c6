package leads

import (
	"fmt"
	"math"
	"math/rand"

	"saasquatch/internal/domain"
)

// MapSearchResults turns base leads from a search response into the internal
// working set. IDs are positional within this set only; each search replaces
// the collection, so "lead-0" from one search has nothing to do with
// "lead-0" from the next.
//
// The fit score assigned here is an explicit placeholder policy: uniform in
// [6.0, 10.0] rounded to one decimal, replaced by the service's refined
// score at enrichment time.
func MapSearchResults(baseLeads []BaseLead) []domain.Lead {
	out := make([]domain.Lead, 0, len(baseLeads))
	for i, bl := range baseLeads {
		score := placeholderFitScore()
		lead := domain.Lead{
			ID:           fmt.Sprintf("lead-%d", i),
			Company:      bl.Company,
			Industry:     stringOr(bl.Industry, "Unknown"),
			Website:      stringOr(bl.Website, ""),
			Phone:        bl.Phone,
			Address:      stringOr(bl.Address, ""),
			FitScore:     &score,
			Tags:         []string{"prospect"},
			BusinessType: domain.BusinessTypeB2B,
			IsEnriched:   false,
		}
		out = append(out, lead)
	}
	return out
}

func placeholderFitScore() float64 {
	return math.Round((rand.Float64()*4+6)*10) / 10
}

func stringOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}
