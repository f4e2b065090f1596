package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// GenerateID generates a unique ID with the given prefix
func GenerateID(prefix string) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 10

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		result[i] = charset[num.Int64()]
	}

	return fmt.Sprintf("%s-%s", prefix, string(result))
}

// GenerateBankID generates the 9-digit numeric reference assigned to users
// and accounts. The first digit is never zero.
func GenerateBankID() string {
	num, _ := rand.Int(rand.Reader, big.NewInt(900000000))
	return fmt.Sprintf("%d", num.Int64()+100000000)
}

// GenerateAccountNumber generates a 9-digit account number.
func GenerateAccountNumber() string {
	return GenerateBankID()
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword checks if a password matches a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// IsEmail reports whether a login identifier should be treated as an email
// address rather than a username.
func IsEmail(identifier string) bool {
	return strings.Contains(identifier, "@")
}

// ValidateBankID validates the 9-digit reference format.
func ValidateBankID(id string) bool {
	if len(id) != 9 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return id[0] != '0'
}
