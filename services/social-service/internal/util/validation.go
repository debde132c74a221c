package util

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

const MinPasswordLength = 6

var usernamePattern = regexp.MustCompile(`^[a-z0-9._]{3,30}$`)

// NormalizeUsername trims and lowercases a username before validation or lookup.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername checks an already normalized username and returns the first rule it breaks,
// or "" when it is acceptable.
func ValidateUsername(username string) string {
	if !usernamePattern.MatchString(username) {
		return domain.MsgUsernameFormat
	}
	if strings.Contains(username, "..") {
		return domain.MsgUsernameDoubleDot
	}
	if strings.HasPrefix(username, ".") || strings.HasSuffix(username, ".") {
		return domain.MsgUsernameEdgeDot
	}
	return ""
}

// ValidatePassword returns the broken password rule or "".
func ValidatePassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domain.MsgPasswordTooShort
	}
	return ""
}

// IsValidMediaURL accepts absolute http(s) URLs with a host.
func IsValidMediaURL(raw string) bool {
	if strings.ContainsAny(raw, " \t\r\n") {
		return false
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
