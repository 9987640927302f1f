package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Index returns a uniformly distributed integer in [0, n).
func Index(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("cannot pick from %d elements", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}

// Picker draws indexes from crypto/rand.
type Picker struct{}

// Pick implements the registry's picker contract.
func (Picker) Pick(n int) (int, error) {
	return Index(n)
}
