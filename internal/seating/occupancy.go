package seating

import (
	"math/rand"
	"sync"
)

// Occupancy decides which seats start out occupied when a grid is built.  It
// stands in for a reservation system and is injected so grids can be made
// deterministic.
type Occupancy interface {
	Occupied(row string, number int) bool
}

// RandomOccupancy marks every seat occupied with probability Ratio.
type RandomOccupancy struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	ratio float64
}

// NewRandomOccupancy returns an occupancy source drawing from rnd.  A nil rnd
// uses a time-seeded source.
func NewRandomOccupancy(rnd *rand.Rand, ratio float64) *RandomOccupancy {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	return &RandomOccupancy{rnd: rnd, ratio: ratio}
}

func (o *RandomOccupancy) Occupied(string, int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rnd.Float64() < o.ratio
}

// FixedOccupancy marks exactly the listed seat ids as occupied.
type FixedOccupancy map[string]bool

// Occupy builds a FixedOccupancy from seat ids.
func Occupy(ids ...string) FixedOccupancy {
	f := make(FixedOccupancy, len(ids))
	for _, id := range ids {
		f[id] = true
	}
	return f
}

func (f FixedOccupancy) Occupied(row string, number int) bool {
	return f[SeatID(row, number)]
}
