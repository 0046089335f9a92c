package weather

import "math"

// rng is the deterministic generator behind the mock forecast. The seed is
// an FNV-1a fold of the seed string and the stream is a 32-bit linear
// congruential generator. Demo fixtures depend on these exact constants;
// do not swap in math/rand.
type rng struct {
	state uint32
}

const (
	fnvOffsetBasis uint32 = 0x811c9dc5
	fnvPrime       uint32 = 0x01000193

	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

func newRNG(seed string) *rng {
	h := fnvOffsetBasis
	for i := 0; i < len(seed); i++ {
		h ^= uint32(seed[i])
		h *= fnvPrime
	}
	return &rng{state: h}
}

// next returns the next value in [0, 1).
func (r *rng) next() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / 4294967296
}

// intn returns an integer in [min, max] inclusive.
func (r *rng) intn(min, max int) int {
	return int(math.Floor(r.next()*float64(max-min+1))) + min
}
