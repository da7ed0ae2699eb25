package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash of the plaintext. Two calls
// with the same input yield different hashes; both verify against it.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// A malformed hash counts as a mismatch, not an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
