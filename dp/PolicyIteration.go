package dp

import (
	"github.com/gomdp/gomdp/mdp"
)

// PolicyIteration computes the optimal value function and an optimal
// policy for m by alternating policy evaluation and greedy policy
// improvement.
//
// The initial policy assigns the first action in enumeration order to
// every non-terminal state; any valid initialization reaches the same
// fixed point, and a deterministic one keeps runs reproducible. Each
// round evaluates the current policy with Evaluate and then replaces
// every state's action with the greedy action under the evaluated
// values. The loop ends on the first round in which no action changes.
// Every accepted improvement raises (or ties) the value function
// pointwise, and the policy space is finite, so termination is
// guaranteed.
func PolicyIteration(m *mdp.MDP, theta float64) (mdp.ValueFunction,
	mdp.Policy) {

	states := m.NonTerminalStates()
	firstAction := m.Actions()[0]

	policy := mdp.TerminalPolicy(m)
	for _, s := range states {
		policy[s] = firstAction
	}

	for round := 0; round < maxSweeps; round++ {
		v := Evaluate(m, policy, theta)

		stable := true
		for _, s := range states {
			best := greedyAction(m, v, s)
			if policy[s] != best {
				stable = false
			}
			policy[s] = best
		}
		if stable {
			return v, policy
		}
	}
	panic(diverged("dp.PolicyIteration"))
}
