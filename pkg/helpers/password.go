package helpers

import "golang.org/x/crypto/bcrypt"

// bcrypt only keys from the first 72 bytes and x/crypto rejects longer
// input outright. The password rules cap length in characters, so a
// multibyte password can exceed 72 bytes while still being valid;
// truncate instead of failing the hash.
const maxPasswordBytes = 72

func passwordBytes(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword hashes the plain text password using bcrypt. The cost factor
// and a fresh random salt are embedded in the output, so hashing the same
// password twice yields different strings.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(passwordBytes(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a bcrypt hash with a plain password. Returns false
// on any mismatch, including an empty plain text.
func CheckPassword(plain string, hash string) bool {
	if plain == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(plain)) == nil
}
