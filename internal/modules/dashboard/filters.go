package dashboard

import (
	"strings"

	"saasquatch/internal/domain"
)

// Filters is the view filter configuration. Applying it never mutates stored
// leads; it only derives the filtered view. Location is recognized here but
// is forwarded to the search request instead of constraining the loaded view.
type Filters struct {
	BusinessType   string   `json:"business_type"`
	MinEmployees   *int     `json:"min_employees"`
	MaxEmployees   *int     `json:"max_employees"`
	MinFitScore    *float64 `json:"min_fit_score"`
	HasContactInfo string   `json:"has_contact_info"`
	Industry       string   `json:"industry"`
	Location       string   `json:"location"`
}

// Validate checks the enumerated fields; empty values are always valid.
func (f Filters) Validate() error {
	switch f.HasContactInfo {
	case "", "any", "yes", "no":
	default:
		return ErrInvalidFilters
	}
	switch f.BusinessType {
	case "", string(domain.BusinessTypeB2B), string(domain.BusinessTypeB2C):
	default:
		return ErrInvalidFilters
	}
	return nil
}

// Apply derives the filtered view: a subsequence of leads in original order.
// Empty filter values impose no constraint, and the employee / fit-score
// bounds only constrain leads that carry the field, so unenriched leads stay
// visible under an employee-range filter.
func (f Filters) Apply(leads []domain.Lead) []domain.Lead {
	out := make([]domain.Lead, 0, len(leads))
	for _, l := range leads {
		if f.matches(l) {
			out = append(out, l)
		}
	}
	return out
}

func (f Filters) matches(l domain.Lead) bool {
	if f.BusinessType != "" && string(l.BusinessType) != f.BusinessType {
		return false
	}
	if f.MinEmployees != nil && l.Employees != nil && *l.Employees < *f.MinEmployees {
		return false
	}
	if f.MaxEmployees != nil && l.Employees != nil && *l.Employees > *f.MaxEmployees {
		return false
	}
	if f.MinFitScore != nil && l.FitScore != nil && *l.FitScore < *f.MinFitScore {
		return false
	}
	if f.HasContactInfo == "yes" && !l.HasContact() {
		return false
	}
	if f.HasContactInfo == "no" && l.HasContact() {
		return false
	}
	if f.Industry != "" && !strings.Contains(strings.ToLower(l.Industry), strings.ToLower(f.Industry)) {
		return false
	}
	return true
}
