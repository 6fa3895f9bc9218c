package dp

import (
	"math"

	"github.com/gomdp/gomdp/mdp"
	"github.com/gomdp/gomdp/utils/floatutils"
)

// ValueIteration computes the optimal value function and an optimal
// policy for m.
//
// Each sweep updates every non-terminal state to the maximum one-step
// expectation over all actions, until the largest change over a full
// sweep drops below theta. The policy is then extracted in a single
// greedy pass over the converged values; terminal states map to
// mdp.NoAction.
func ValueIteration(m *mdp.MDP, theta float64) (mdp.ValueFunction,
	mdp.Policy) {

	v := mdp.NewValueFunction(m)
	states := m.NonTerminalStates()
	actions := m.Actions()

	converged := false
	for sweep := 0; sweep < maxSweeps && !converged; sweep++ {
		delta := 0.0
		for _, s := range states {
			values := make([]float64, len(actions))
			for i, a := range actions {
				values[i] = backup(m, v, s, a)
			}
			value := floatutils.Max(values...)
			delta = math.Max(delta, math.Abs(v[s]-value))
			v[s] = value
		}
		converged = delta < theta
	}
	if !converged {
		panic(diverged("dp.ValueIteration"))
	}

	policy := mdp.TerminalPolicy(m)
	for _, s := range states {
		policy[s] = greedyAction(m, v, s)
	}
	return v, policy
}
