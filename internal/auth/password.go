package auth

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyHashes holds one placeholder hash per bcrypt cost. Comparing against it
// when a login names an unknown user makes both paths cost the same.
var dummyHashes sync.Map

// HashPassword hashes password with the given bcrypt cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PrepareDummyHash builds the placeholder hash for cost ahead of the first
// failed lookup.
func PrepareDummyHash(cost int) error {
	_, err := dummyHash(cost)
	return err
}

// BurnComparison performs a comparison at the given cost that always fails.
func BurnComparison(password string, cost int) {
	hash, err := dummyHash(cost)
	if err != nil {
		return
	}
	_ = bcrypt.CompareHashAndPassword(hash, []byte(password))
}

func dummyHash(cost int) ([]byte, error) {
	if h, ok := dummyHashes.Load(cost); ok {
		return h.([]byte), nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte("fitbyte-timing-placeholder"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to build placeholder hash: %w", err)
	}
	actual, _ := dummyHashes.LoadOrStore(cost, h)
	return actual.([]byte), nil
}
