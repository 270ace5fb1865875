package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateCode returns a 6-digit verification code drawn uniformly
// from [100000, 999999], so it never has a leading zero.
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		panic(err)
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}
