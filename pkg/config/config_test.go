package config

import (
	"testing"
	"time"
)

func TestLoadGlobalConfigDefaults(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("REMEMBER_ME_TTL_HOURS", "not-a-number")
	t.Setenv("SERVER_PORT", "")

	conf := LoadGlobalConfig()
	if conf.SessionTTL != 24*time.Hour {
		t.Fatalf("SessionTTL = %v, want 24h", conf.SessionTTL)
	}
	if conf.RememberMeTTL != 720*time.Hour {
		t.Fatalf("RememberMeTTL = %v, want 720h", conf.RememberMeTTL)
	}
	if conf.ServerPort != "8080" {
		t.Fatalf("ServerPort = %q, want 8080", conf.ServerPort)
	}
}

func TestLoadGlobalConfigOverrides(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("SERVER_PORT", "9000")

	conf := LoadGlobalConfig()
	if conf.SessionTTL != 2*time.Hour {
		t.Fatalf("SessionTTL = %v, want 2h", conf.SessionTTL)
	}
	if conf.ServerPort != "9000" {
		t.Fatalf("ServerPort = %q, want 9000", conf.ServerPort)
	}
}

func TestGetEnvPanicsWhenMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing key")
		}
	}()
	GetEnv("SOCIAL_TEST_DEFINITELY_UNSET_KEY")
}
