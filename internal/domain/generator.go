package domain

import (
	"math/rand/v2"
	"sync"

	"github.com/Flarenzy/subnet-practice/internal/subnet"
)

const (
	minSubnetBits = 8
	maxSubnetBits = 30

	minPlanBaseAddr = 0x0A000000 // 10.0.0.0
	maxPlanBaseAddr = 0xDF000000 // 223.0.0.0
	minPlanBaseBits = 8
	maxPlanBaseBits = 24

	minPlanHosts = 10
	maxPlanHosts = 500
)

// Generator draws the inputs of new problems.
type Generator interface {
	SubnetNetwork() subnet.Network
	PlanInput(count int) (subnet.Network, []int)
}

type randomGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomGenerator returns a Generator reading from src. It is safe for
// concurrent use.
func NewRandomGenerator(src rand.Source) Generator {
	return &randomGenerator{rng: rand.New(src)}
}

// SubnetNetwork draws four random octets and a prefix in [8,30].
func (g *randomGenerator) SubnetNetwork() subnet.Network {
	g.mu.Lock()
	defer g.mu.Unlock()

	return subnet.Network{
		Addr: subnet.Address(g.rng.Uint32()),
		Bits: g.between(minSubnetBits, maxSubnetBits),
	}
}

// PlanInput draws a base network between 10.0.0.0 and 223.0.0.0 with a prefix
// in [8,24], and count host requirements in [10,500].
func (g *randomGenerator) PlanInput(count int) (subnet.Network, []int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	base := subnet.Network{
		Addr: subnet.Address(minPlanBaseAddr + g.rng.Uint32N(maxPlanBaseAddr-minPlanBaseAddr+1)),
		Bits: g.between(minPlanBaseBits, maxPlanBaseBits),
	}.Masked()

	hosts := make([]int, max(count, 0))
	for i := range hosts {
		hosts[i] = g.between(minPlanHosts, maxPlanHosts)
	}
	return base, hosts
}

func (g *randomGenerator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
