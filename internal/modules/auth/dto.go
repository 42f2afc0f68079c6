package auth

type RegisterRequest struct {
	Email                  string   `json:"email"`
	Username               string   `json:"username"`
	Password               string   `json:"password"`
	LinkedinURL            *string  `json:"linkedin_url,omitempty"`
	TargetIndustries       []string `json:"target_industries,omitempty"`
	MinEmployees           *int     `json:"min_employees,omitempty"`
	MaxEmployees           *int     `json:"max_employees,omitempty"`
	MinRevenue             *int64   `json:"min_revenue,omitempty"`
	MaxRevenue             *int64   `json:"max_revenue,omitempty"`
	BusinessTypePreference *string  `json:"business_type_preference,omitempty"`
	RequireContactInfo     *bool    `json:"require_contact_info,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPublic is the login-time projection of a user.
type UserPublic struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	LinkedinURL *string `json:"linkedin_url"`
}

// RegisteredUser echoes the stored profile including ICP preferences.
type RegisteredUser struct {
	ID                     int64    `json:"id"`
	Email                  string   `json:"email"`
	Username               string   `json:"username"`
	LinkedinURL            *string  `json:"linkedin_url"`
	TargetIndustries       []string `json:"target_industries"`
	MinEmployees           *int     `json:"min_employees"`
	MaxEmployees           *int     `json:"max_employees"`
	MinRevenue             *int64   `json:"min_revenue"`
	MaxRevenue             *int64   `json:"max_revenue"`
	BusinessTypePreference *string  `json:"business_type_preference"`
	RequireContactInfo     bool     `json:"require_contact_info"`
}
