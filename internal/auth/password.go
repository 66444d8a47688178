package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the platform has always used for
// account passwords. Raising it invalidates nothing but slows logins.
const bcryptCost = 8

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcryptCost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
