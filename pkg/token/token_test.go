package token

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTokenShape(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tok, err := gen.NewToken()
		if err != nil {
			t.Fatalf("NewToken error: %v", err)
		}
		if len(tok) != 64 {
			t.Fatalf("token length = %d, want 64", len(tok))
		}
		if err := Validate(tok); err != nil {
			t.Fatalf("generated token failed validation: %v", err)
		}
		if seen[tok] {
			t.Fatalf("duplicate token %s", tok)
		}
		seen[tok] = true
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"abc",
		strings.Repeat("z", 64),
		strings.Repeat("a", 63),
		strings.Repeat("a", 66),
	}
	for _, c := range cases {
		if err := Validate(c); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("Validate(%q) = %v, want ErrMalformedToken", c, err)
		}
	}
}
