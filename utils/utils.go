package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// GenerateOTP returns a random 6-digit one-time passcode
func GenerateOTP() string {
	const digits = "0123456789"
	otp := make([]byte, 6)
	for i := range otp {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			n = big.NewInt(0)
		}
		otp[i] = digits[n.Int64()]
	}
	return string(otp)
}

// GeneratePaymentCode builds a human-readable payment code prefixed with the
// course category, e.g. "Web-Development-8f14e45f".
func GeneratePaymentCode(categoryName string) string {
	prefix := strings.ReplaceAll(categoryName, " ", "-")
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-%s", prefix, suffix)
}
