package dp

import (
	"math"

	"github.com/gomdp/gomdp/mdp"
)

// Evaluate computes the value function of a fixed policy.
//
// The policy must assign an action to every non-terminal state of m.
// Values start at 0 and are swept until the largest change over a full
// sweep drops below theta. Terminal states are never visited and keep
// value 0.
func Evaluate(m *mdp.MDP, policy mdp.Policy, theta float64) mdp.ValueFunction {
	v := mdp.NewValueFunction(m)
	states := m.NonTerminalStates()

	for sweep := 0; sweep < maxSweeps; sweep++ {
		delta := 0.0
		for _, s := range states {
			value := backup(m, v, s, policy[s])
			delta = math.Max(delta, math.Abs(v[s]-value))
			v[s] = value
		}
		if delta < theta {
			return v
		}
	}
	panic(diverged("dp.Evaluate"))
}
