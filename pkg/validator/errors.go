package validator

import "errors"

var (
	ErrMissingShortName = errors.New("short name is required")
	ErrMissingLongURI   = errors.New("long URI is required")
)
