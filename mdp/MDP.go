// Package mdp implements finite Markov Decision Processes.
//
// An MDP packages together everything that defines a sequential
// decision problem: a finite state set, a finite action set shared by
// every non-terminal state, a stochastic transition kernel, a reward
// function on (state, action) pairs, a discount factor, and a set of
// terminal states. The MDP is validated once at construction and is
// immutable afterwards, so the planning and learning algorithms in
// this module can all read the same MDP concurrently, each producing
// its own value function, policy, or Q-table.
package mdp

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// ProbTolerance is the absolute tolerance within which the transition
// probabilities for each (state, action) pair must sum to 1.
const ProbTolerance = 1e-9

// Transition is a single entry of the transition kernel: the
// probability of moving to the Next state.
type Transition struct {
	Prob float64
	Next State
}

// Kernel maps each (state, action) pair to its list of transitions.
// The list order is preserved by the MDP but carries no meaning beyond
// presentation; only the probabilities matter.
type Kernel map[State]map[Action][]Transition

// Rewards maps each (state, action) pair to its deterministic reward.
// Missing entries are treated as a reward of 0.
type Rewards map[State]map[Action]float64

// MDP is an immutable finite Markov Decision Process.
//
// The state and action slices fix the enumeration order used by every
// algorithm in this module: sweeps visit states in state order, and
// greedy action selection breaks ties in favour of the earliest action
// in action order. Constructing two MDPs with the same data in the
// same order therefore yields bit-identical algorithm outputs.
type MDP struct {
	states    []State
	actions   []Action
	stateSet  map[State]bool
	terminals map[State]bool
	kernel    Kernel
	rewards   Rewards
	gamma     float64
}

// New validates the problem definition and creates an MDP.
//
// New fails, returning a nil MDP, if states or actions is empty, if
// gamma lies outside [0, 1), if a terminal state is unknown, if any
// non-terminal state is missing a transition list for some action, or
// if any supplied transition list has negative probabilities, does not
// sum to 1 within ProbTolerance, or references an unknown successor.
// Transition lists supplied for terminal states are validated in the
// same way even though no algorithm ever consults them.
func New(states []State, actions []Action, kernel Kernel, rewards Rewards,
	gamma float64, terminals []State) (*MDP, error) {

	if len(states) == 0 {
		return nil, fmt.Errorf("mdp: no states given")
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("mdp: no actions given")
	}
	if gamma < 0 || gamma >= 1 {
		return nil, fmt.Errorf("mdp: discount factor must be in [0, 1), "+
			"got %v", gamma)
	}

	stateSet := make(map[State]bool, len(states))
	for _, s := range states {
		stateSet[s] = true
	}

	terminalSet := make(map[State]bool, len(terminals))
	for _, s := range terminals {
		if !stateSet[s] {
			return nil, fmt.Errorf("mdp: unknown terminal state %q", s)
		}
		terminalSet[s] = true
	}

	// Every non-terminal state needs a transition list for every
	// action; any list that is present must be a valid distribution
	// over known states.
	for _, s := range states {
		for _, a := range actions {
			transitions := kernel[s][a]
			if len(transitions) == 0 {
				if terminalSet[s] {
					continue
				}
				return nil, fmt.Errorf("mdp: state %q has no transitions "+
					"for action %q", s, a)
			}

			sum := 0.0
			for _, t := range transitions {
				if t.Prob < 0 {
					return nil, fmt.Errorf("mdp: negative probability %v "+
						"for (%q, %q)", t.Prob, s, a)
				}
				if !stateSet[t.Next] {
					return nil, fmt.Errorf("mdp: transition for (%q, %q) "+
						"references unknown state %q", s, a, t.Next)
				}
				sum += t.Prob
			}
			if !scalar.EqualWithinAbs(sum, 1.0, ProbTolerance) {
				return nil, fmt.Errorf("mdp: transition probabilities for "+
					"(%q, %q) sum to %v, expected 1", s, a, sum)
			}
		}
	}

	m := &MDP{
		states:    append([]State(nil), states...),
		actions:   append([]Action(nil), actions...),
		stateSet:  stateSet,
		terminals: terminalSet,
		kernel:    kernel,
		rewards:   rewards,
		gamma:     gamma,
	}
	return m, nil
}

// States returns the states in enumeration order.
func (m *MDP) States() []State {
	return append([]State(nil), m.states...)
}

// Actions returns the actions in enumeration order.
func (m *MDP) Actions() []Action {
	return append([]Action(nil), m.actions...)
}

// NonTerminalStates returns the non-terminal states in enumeration
// order.
func (m *MDP) NonTerminalStates() []State {
	states := make([]State, 0, len(m.states))
	for _, s := range m.states {
		if !m.terminals[s] {
			states = append(states, s)
		}
	}
	return states
}

// Transitions returns the transition list for taking action a in
// state s.
func (m *MDP) Transitions(s State, a Action) []Transition {
	return m.kernel[s][a]
}

// Reward returns the reward for taking action a in state s.
func (m *MDP) Reward(s State, a Action) float64 {
	return m.rewards[s][a]
}

// Terminal returns whether s is a terminal state.
func (m *MDP) Terminal(s State) bool {
	return m.terminals[s]
}

// Gamma returns the discount factor.
func (m *MDP) Gamma() float64 {
	return m.gamma
}
