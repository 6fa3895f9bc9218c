package simulate

import (
	"fmt"

	"github.com/gomdp/gomdp/mdp"
)

// Event records one step of a rollout: taking Action in From yielded
// Reward and moved the MDP to To.
type Event struct {
	From   mdp.State
	Action mdp.Action
	Reward float64
	To     mdp.State
}

func (e Event) String() string {
	return fmt.Sprintf("%v --%v/%v--> %v", e.From, e.Action, e.Reward, e.To)
}

// Rollout drives policy through the simulator from start, stopping at
// the first terminal state or after maxSteps steps, whichever comes
// first. It returns the trajectory and the undiscounted sum of the
// rewards collected along it.
func (sim *Simulator) Rollout(policy mdp.Policy, start mdp.State,
	maxSteps int) ([]Event, float64) {

	trajectory := make([]Event, 0, maxSteps)
	ret := 0.0

	s := start
	for i := 0; i < maxSteps && !sim.m.Terminal(s); i++ {
		a := policy[s]
		next, reward := sim.Step(s, a)

		trajectory = append(trajectory, Event{s, a, reward, next})
		ret += reward
		s = next
	}
	return trajectory, ret
}
