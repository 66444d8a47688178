// Package otp issues the numeric codes used for email verification.
package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// Validity is how long a code stays usable after issuance.
const Validity = 10 * time.Minute

const (
	codeMin = 100000
	codeMax = 999999
)

// Generate draws a uniform 6-digit code.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}

// ExpiryFrom computes the moment a code issued at t stops being valid.
func ExpiryFrom(t time.Time) time.Time {
	return t.Add(Validity)
}
