package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"log"
	"math/rand"
)

// newRNG returns the room's RNG. A non-zero seed pins deals and starting
// seats for tests; production rooms get a crypto seed so clients cannot
// predict deals.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = cryptoSeed()
	}
	return rand.New(rand.NewSource(seed))
}

func cryptoSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		log.Printf("[RNG] crypto seed unavailable, falling back: %v", err)
		return 1
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
