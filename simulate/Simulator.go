// Package simulate implements a stochastic simulator for finite MDPs.
//
// The simulator is the only sampling surface of the module: the
// Q-learning agent interacts with its MDP exclusively through Step,
// and external callers use Step or Rollout to exercise a learned
// policy. The random source is injected at construction so that runs
// are reproducible under a fixed seed.
package simulate

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gomdp/gomdp/mdp"
)

// Simulator samples transitions from an MDP. It holds no state of its
// own beyond the MDP it reads and its random source.
type Simulator struct {
	m      *mdp.MDP
	source rand.Source
}

// New creates a Simulator for m with a random source built from seed.
func New(m *mdp.MDP, seed uint64) *Simulator {
	return NewFrom(m, rand.NewSource(seed))
}

// NewFrom creates a Simulator for m drawing from an existing random
// source. Callers that run several sampling components in one
// experiment can share a single source between them.
func NewFrom(m *mdp.MDP, source rand.Source) *Simulator {
	return &Simulator{m, source}
}

// Step advances the MDP by one step from state s under action a,
// returning the sampled successor state and the reward.
//
// Terminal states are absorbing: for any action, Step returns (s, 0)
// without drawing from the random source. Otherwise the successor is
// sampled from the transition probabilities for (s, a) and the reward
// is the MDP's reward for (s, a), independent of the outcome.
func (sim *Simulator) Step(s mdp.State, a mdp.Action) (mdp.State, float64) {
	if sim.m.Terminal(s) {
		return s, 0
	}

	transitions := sim.m.Transitions(s, a)
	weights := make([]float64, len(transitions))
	for i, t := range transitions {
		weights[i] = t.Prob
	}

	dist := distuv.NewCategorical(weights, sim.source)
	next := transitions[int(dist.Rand())].Next

	return next, sim.m.Reward(s, a)
}
