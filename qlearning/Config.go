package qlearning

import "fmt"

// Config represents a configuration for the QLearning agent
type Config struct {
	// Episodes is the number of episodes to run. Each episode starts
	// in a uniformly random non-terminal state and runs until a
	// terminal state is reached.
	Episodes int

	// LearningRate is the step size of the tabular update.
	LearningRate float64

	// Epsilon is the probability of taking a uniformly random action
	// instead of the greedy one.
	Epsilon float64
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Episodes < 1 {
		return fmt.Errorf("episodes must be positive, got %d", c.Episodes)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate must be in (0, 1], got %v",
			c.LearningRate)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}
	return nil
}
