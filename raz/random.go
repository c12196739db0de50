package raz

// LCG parameters: seed = (seed*1103515245 + 12345) mod 2^31.
const (
	DefaultSeed uint32 = 12345

	lcgMultiplier uint32 = 1103515245
	lcgIncrement  uint32 = 12345
	lcgMask       uint32 = 0x7FFFFFFF
	lcgModulus    uint64 = 1 << 31
)

// Random is a linear congruential generator. It is deterministic for a given
// seed and not suitable for anything security related.
type Random struct {
	seed uint32
}

// NewRandom returns a generator starting from seed.
func NewRandom(seed uint32) *Random {
	return &Random{seed: seed}
}

// DefaultRandom returns a generator starting from DefaultSeed.
func DefaultRandom() *Random {
	return NewRandom(DefaultSeed)
}

// Seed returns the current state.
func (r *Random) Seed() uint32 { return r.seed }

// Next advances the state and returns it, a value in [0, 2^31).
func (r *Random) Next() uint32 {
	r.seed = (r.seed*lcgMultiplier + lcgIncrement) & lcgMask
	return r.seed
}

// Range returns a value in [lo, hi] as lo + Next() % (hi-lo+1). The modulo
// bias is kept so a given seed reproduces the same sequence everywhere.
// Swapped bounds are reordered.
func (r *Random) Range(lo, hi uint32) uint32 {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	if span == 0 {
		return lo + r.Next()
	}
	return lo + r.Next()%span
}

// UniformRange returns a value in [lo, hi] without modulo bias by rejecting
// draws from the incomplete last block. Spans wider than 2^31 are capped.
func (r *Random) UniformRange(lo, hi uint32) uint32 {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi-lo) + 1
	if span >= lcgModulus {
		return lo + r.Next()
	}
	limit := lcgModulus - lcgModulus%span
	for {
		x := uint64(r.Next())
		if x < limit {
			return lo + uint32(x%span)
		}
	}
}

// FloatRange returns a value in [lo, hi) scaled linearly from Next().
func (r *Random) FloatRange(lo, hi float64) float64 {
	return lo + float64(r.Next())/float64(lcgModulus)*(hi-lo)
}
