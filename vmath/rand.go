//go:generate go tool mockgen -source=rand.go -destination=mocks/rand_mock.go -package=mocks

package vmath

// Source yields uniformly distributed values in [0, 1)
type Source interface {
	Float64() float64
}

// FastRand is a xorshift64 generator, cheap and deterministic per seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
