package utils

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("usr")
	if !strings.HasPrefix(id, "usr-") {
		t.Errorf("id %q missing prefix", id)
	}
	if len(id) != len("usr-")+10 {
		t.Errorf("id %q has wrong length", id)
	}
	if id == GenerateID("usr") {
		t.Error("consecutive IDs should differ")
	}
}

func TestGenerateBankID(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateBankID()
		if !ValidateBankID(id) {
			t.Fatalf("generated invalid bank ID %q", id)
		}
	}
}

func TestValidateBankID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"123456789", true},
		{"999999999", true},
		{"023456789", false}, // leading zero
		{"12345678", false},  // too short
		{"1234567890", false},
		{"12345678a", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateBankID(tt.id); got != tt.want {
			t.Errorf("ValidateBankID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("securepass123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "securepass123" {
		t.Error("hash should not equal the plaintext")
	}
	if !CheckPassword("securepass123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrongpass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestIsEmail(t *testing.T) {
	if !IsEmail("alice@example.com") {
		t.Error("email identifier not recognised")
	}
	if IsEmail("alice") {
		t.Error("username treated as email")
	}
}
