package lib

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderReference generates an order reference in the format
// JJ-XXXX where XXXX is a random alphanumeric string. References are
// handed to the customer for the confirmation toast only; there is no
// order aggregate to persist them on.
func GenerateOrderReference() string {
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)

	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 4

	randomPart := make([]byte, length)
	for i := range randomPart {
		randomPart[i] = chars[r.Intn(len(chars))]
	}

	return fmt.Sprintf("JJ-%s", string(randomPart))
}
