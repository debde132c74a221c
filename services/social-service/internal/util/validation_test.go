package util

import (
	"strings"
	"testing"

	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

func TestNormalizeUsername(t *testing.T) {
	if got := NormalizeUsername("  Bob.Smith \n"); got != "bob.smith" {
		t.Fatalf("NormalizeUsername = %q, want bob.smith", got)
	}
}

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"bob.smith", ""},
		{"a_b", ""},
		{"user_123", ""},
		{strings.Repeat("x", 30), ""},
		{"ab", domain.MsgUsernameFormat},
		{strings.Repeat("x", 31), domain.MsgUsernameFormat},
		{"Bob", domain.MsgUsernameFormat},
		{"bob smith", domain.MsgUsernameFormat},
		{"bob-smith", domain.MsgUsernameFormat},
		{"bob..smith", domain.MsgUsernameDoubleDot},
		{"...", domain.MsgUsernameDoubleDot},
		{".bob", domain.MsgUsernameEdgeDot},
		{"bob.", domain.MsgUsernameEdgeDot},
	}
	for _, c := range cases {
		if got := ValidateUsername(c.name); got != c.want {
			t.Fatalf("ValidateUsername(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if got := ValidatePassword("12345"); got != domain.MsgPasswordTooShort {
		t.Fatalf("short password: got %q", got)
	}
	if got := ValidatePassword("secret6"); got != "" {
		t.Fatalf("valid password rejected: %q", got)
	}
	if got := ValidatePassword("ééééé√"); got != "" {
		t.Fatalf("six multibyte characters should pass, got %q", got)
	}
	if got := ValidatePassword(strings.Repeat("p", 200)); got != "" {
		t.Fatalf("long password rejected: %q", got)
	}
}

func TestIsValidMediaURL(t *testing.T) {
	valid := []string{
		"https://x/y.png",
		"http://cdn.example.com/v/clip.mp4?t=1",
	}
	invalid := []string{
		"not a url",
		"/relative/path.png",
		"ftp://example.com/file",
		"javascript:alert(1)",
		"https://",
		"example.com/pic.png",
	}
	for _, u := range valid {
		if !IsValidMediaURL(u) {
			t.Fatalf("IsValidMediaURL(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidMediaURL(u) {
			t.Fatalf("IsValidMediaURL(%q) = true, want false", u)
		}
	}
}
