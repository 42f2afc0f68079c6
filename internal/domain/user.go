package domain

import "time"

// User is a registered account with optional ideal-customer-profile
// preferences used as enrichment hints.
type User struct {
	ID                     int64      `json:"id"`
	Email                  string     `json:"email" validate:"required,email"`
	Username               string     `json:"username"`
	PasswordHash           string     `json:"-"`
	LinkedinURL            *string    `json:"linkedin_url,omitempty"`
	TargetIndustries       []string   `json:"target_industries,omitempty"`
	MinEmployees           *int       `json:"min_employees,omitempty"`
	MaxEmployees           *int       `json:"max_employees,omitempty"`
	MinRevenue             *int64     `json:"min_revenue,omitempty"`
	MaxRevenue             *int64     `json:"max_revenue,omitempty"`
	BusinessTypePreference *string    `json:"business_type_preference,omitempty"`
	RequireContactInfo     bool       `json:"require_contact_info"`
	EmailNotifications     bool       `json:"email_notifications"`
	LastLogin              *time.Time `json:"last_login,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}
