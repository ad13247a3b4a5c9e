package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateBillID builds a human-readable bill identifier from the current
// epoch milliseconds plus a random suffix, so no central counter is needed.
// Format: BILL-<epoch-millis>-<0..999>.
func GenerateBillID() string {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// the timestamp still keeps identifiers practically unique.
		return fmt.Sprintf("BILL-%d-0", time.Now().UnixMilli())
	}
	return fmt.Sprintf("BILL-%d-%d", time.Now().UnixMilli(), suffix.Int64())
}
