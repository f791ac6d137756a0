package account

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialsWithheld stands in for the password of a log-in attempt.
// A freshly salted digest of an attempt is not verifiable, so none is sent.
const CredentialsWithheld = "withheld"

// Hasher digests passwords before they are placed in a Submission.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}
