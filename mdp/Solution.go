package mdp

// State identifies a state of an MDP. States are opaque: algorithms
// only ever compare them and use them as map keys.
type State string

// Action identifies an action of an MDP.
type Action string

// NoAction is the policy entry for terminal states, where no further
// action is ever taken.
const NoAction Action = ""

// ValueFunction maps each state to its expected discounted return.
// Terminal states always have value 0.
type ValueFunction map[State]float64

// Policy maps each state to the action chosen in that state. Terminal
// states map to NoAction. A complete policy has an entry for every
// state of its MDP.
type Policy map[State]Action

// QTable maps each (state, action) pair to an estimated action value.
type QTable map[State]map[Action]float64

// NewValueFunction creates a value function over m's states with every
// value 0.
func NewValueFunction(m *MDP) ValueFunction {
	v := make(ValueFunction, len(m.states))
	for _, s := range m.states {
		v[s] = 0
	}
	return v
}

// NewQTable creates a Q-table over m's states and actions with every
// entry 0.
func NewQTable(m *MDP) QTable {
	q := make(QTable, len(m.states))
	for _, s := range m.states {
		q[s] = make(map[Action]float64, len(m.actions))
		for _, a := range m.actions {
			q[s][a] = 0
		}
	}
	return q
}

// TerminalPolicy creates a policy holding only the NoAction entries
// for m's terminal states. Algorithms fill in the remaining states to
// produce a complete policy.
func TerminalPolicy(m *MDP) Policy {
	policy := make(Policy, len(m.states))
	for s := range m.terminals {
		policy[s] = NoAction
	}
	return policy
}
