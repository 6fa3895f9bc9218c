// Package dp implements dynamic-programming solvers for finite MDPs:
// policy evaluation, value iteration, and policy iteration.
//
// All three solvers share the same sweep structure. A sweep visits the
// MDP's non-terminal states in enumeration order and updates each
// state's value in place, so later updates within a sweep already see
// earlier ones (Gauss-Seidel rather than Jacobi iteration). Sweeps
// repeat until the largest absolute change over a full sweep falls
// below a threshold theta. For a discount factor below 1 the Bellman
// backup is a contraction, so the sweeps converge to a unique fixed
// point regardless of update order; the fixed enumeration order only
// pins down the exact trajectory taken to reach it.
package dp

import (
	"fmt"

	"github.com/gomdp/gomdp/mdp"
	"github.com/gomdp/gomdp/utils/floatutils"
)

// DefaultTheta is the convergence threshold to use when a caller has
// no reason to choose another.
const DefaultTheta = 1e-6

// maxSweeps bounds every solver loop. Convergence is guaranteed for a
// validated MDP, so exceeding the bound means an invariant was broken
// and the solver panics rather than returning a silently bogus result.
const maxSweeps = 1_000_000

// backup computes the one-step expectation of taking action a in
// state s under the value estimate v: the expected immediate reward
// plus the discounted value of the successor state.
func backup(m *mdp.MDP, v mdp.ValueFunction, s mdp.State,
	a mdp.Action) float64 {

	value := 0.0
	for _, t := range m.Transitions(s, a) {
		value += t.Prob * (m.Reward(s, a) + m.Gamma()*v[t.Next])
	}
	return value
}

// greedyAction returns the action maximizing the one-step expectation
// in state s under v. Ties go to the earliest action in enumeration
// order.
func greedyAction(m *mdp.MDP, v mdp.ValueFunction, s mdp.State) mdp.Action {
	actions := m.Actions()

	values := make([]float64, len(actions))
	for i, a := range actions {
		values[i] = backup(m, v, s, a)
	}
	return actions[floatutils.ArgMax(values)]
}

// diverged reports the panic raised when a solver exhausts maxSweeps.
func diverged(solver string) string {
	return fmt.Sprintf("%v: no convergence after %d sweeps; the MDP "+
		"violates a construction invariant", solver, maxSweeps)
}
