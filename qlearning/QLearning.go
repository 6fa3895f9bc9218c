// Package qlearning implements tabular Q-Learning.
//
// Q-Learning is model-free: the agent never reads the MDP's transition
// kernel or reward table directly, it only observes the (next state,
// reward) pairs sampled by a simulator. The quality of the learned
// policy therefore depends on the episode count, the learning rate,
// and the exploration rate; a poorly parameterized run yields a
// suboptimal policy rather than an error.
package qlearning

import (
	"golang.org/x/exp/rand"

	"github.com/gomdp/gomdp/mdp"
	"github.com/gomdp/gomdp/simulate"
	"github.com/gomdp/gomdp/utils/floatutils"
)

// QLearning learns a policy for an MDP from simulated interaction
// using an ε-greedy behaviour policy and the tabular Q-Learning
// update.
type QLearning struct {
	m      *mdp.MDP
	sim    *simulate.Simulator
	config Config
	rng    *rand.Rand
}

// New creates a new QLearning agent for m. The agent's exploration
// draws and the simulator it learns from share a single random source
// built from seed, so a run is fully determined by (m, config, seed).
func New(m *mdp.MDP, config Config, seed uint64) (*QLearning, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	source := rand.NewSource(seed)
	sim := simulate.NewFrom(m, source)

	return &QLearning{m, sim, config, rand.New(source)}, nil
}

// Run learns for the configured number of episodes and returns the
// final Q-table along with the greedy policy derived from it. Terminal
// states map to mdp.NoAction in the returned policy and keep their
// zero-valued Q-table rows.
func (q *QLearning) Run() (mdp.QTable, mdp.Policy) {
	table := mdp.NewQTable(q.m)
	actions := q.m.Actions()
	starts := q.m.NonTerminalStates()

	for episode := 0; episode < q.config.Episodes; episode++ {
		s := starts[q.rng.Intn(len(starts))]

		for !q.m.Terminal(s) {
			var a mdp.Action
			if q.rng.Float64() < q.config.Epsilon {
				a = actions[q.rng.Intn(len(actions))]
			} else {
				a = greedy(table[s], actions)
			}

			next, reward := q.sim.Step(s, a)

			target := reward + q.m.Gamma()*maxValue(table[next], actions)
			table[s][a] += q.config.LearningRate * (target - table[s][a])
			s = next
		}
	}

	policy := mdp.TerminalPolicy(q.m)
	for _, s := range starts {
		policy[s] = greedy(table[s], actions)
	}
	return table, policy
}

// greedy returns the action with the highest estimated value in a
// Q-table row. Ties go to the earliest action in enumeration order.
func greedy(row map[mdp.Action]float64, actions []mdp.Action) mdp.Action {
	values := make([]float64, len(actions))
	for i, a := range actions {
		values[i] = row[a]
	}
	return actions[floatutils.ArgMax(values)]
}

// maxValue returns the highest estimated value in a Q-table row.
func maxValue(row map[mdp.Action]float64, actions []mdp.Action) float64 {
	values := make([]float64, len(actions))
	for i, a := range actions {
		values[i] = row[a]
	}
	return floatutils.Max(values...)
}
