package dashboard

import "errors"

var (
	ErrEmptyQuery         = errors.New("search query is empty")
	ErrBackendUnavailable = errors.New("lead service is not reachable")
	ErrNoSelection        = errors.New("no leads selected")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrNoFitScore         = errors.New("lead has no fit score")
	ErrStaleRequest       = errors.New("superseded by a newer search")
	ErrInvalidFilters     = errors.New("invalid filter configuration")
)
