package util

import (
	"regexp"
)

// IsValidEmail verifies the email format.
func IsValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	reg := regexp.MustCompile(pattern)
	return reg.MatchString(email)
}

// IsValidUsername verifies the username format: letters, numbers,
// underscores, length 3-20.
func IsValidUsername(username string) bool {
	pattern := `^[a-zA-Z0-9_]{3,20}$`
	reg := regexp.MustCompile(pattern)
	return reg.MatchString(username)
}

var (
	passwordUpperRE   = regexp.MustCompile(`[A-Z]`)
	passwordLowerRE   = regexp.MustCompile(`[a-z]`)
	passwordDigitRE   = regexp.MustCompile(`\d`)
	passwordSpecialRE = regexp.MustCompile(`[@$!%*?&.]`)
)

// IsValidPassword verifies the password policy: at least 8 characters with
// uppercase, lowercase, a digit and a special character of @$!%*?&.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return passwordUpperRE.MatchString(password) &&
		passwordLowerRE.MatchString(password) &&
		passwordDigitRE.MatchString(password) &&
		passwordSpecialRE.MatchString(password)
}
