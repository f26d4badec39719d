package validator

import "strings"

// ValidateRegistration checks that both registration fields were submitted.
// This is the caller-contract check the core assumes its caller performs:
// the registration service itself never sees empty fields because handlers
// reject them here first with a 400.
func ValidateRegistration(shortName, longURI string) error {
	if strings.TrimSpace(shortName) == "" {
		return ErrMissingShortName
	}
	if strings.TrimSpace(longURI) == "" {
		return ErrMissingLongURI
	}
	return nil
}
