package util

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret6")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret6" {
		t.Fatal("hash must not equal the plain password")
	}
	if err := CheckPassword(hash, "secret6"); err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	err = CheckPassword(hash, "wrong")
	if err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
	if !IsMismatch(err) {
		t.Fatalf("expected mismatch error, got %v", err)
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("secret6")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("secret6")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password should differ")
	}
}

func TestLongPasswordsKeepEveryByte(t *testing.T) {
	long := strings.Repeat("p", 100)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("HashPassword error for a 100-byte password: %v", err)
	}
	if err := CheckPassword(hash, long); err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	// differs only after byte 72, which plain bcrypt would ignore
	if err := CheckPassword(hash, strings.Repeat("p", 99)+"q"); !IsMismatch(err) {
		t.Fatalf("expected mismatch for a different long password, got %v", err)
	}
}
