package testgen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/seehuhn/mt19937"
)

// NewEntropySource seeds a fresh mt19937_64 from the operating system. There
// is no fallback seed; callers treat an error here as fatal.
func NewEntropySource() (Source, error) {
	var seed [8]byte

	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("reading entropy: %w", err)
	}

	mt := mt19937.New()
	mt.Seed(int64(binary.LittleEndian.Uint64(seed[:])))

	return mt, nil
}
