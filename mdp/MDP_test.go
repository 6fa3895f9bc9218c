package mdp

import (
	"testing"
)

func chainStates() []State { return []State{"s0", "s1", "s2"} }

func chainActions() []Action { return []Action{"a0", "a1"} }

func chainKernel() Kernel {
	return Kernel{
		"s0": {
			"a0": {{Prob: 0.8, Next: "s0"}, {Prob: 0.2, Next: "s1"}},
			"a1": {{Prob: 0.5, Next: "s1"}, {Prob: 0.5, Next: "s2"}},
		},
		"s1": {
			"a0": {{Prob: 1.0, Next: "s0"}},
			"a1": {{Prob: 1.0, Next: "s2"}},
		},
	}
}

func chainRewards() Rewards {
	return Rewards{
		"s0": {"a0": 0, "a1": 1},
		"s1": {"a0": 0, "a1": 2},
	}
}

func TestNewValidChain(t *testing.T) {
	m, err := New(chainStates(), chainActions(), chainKernel(),
		chainRewards(), 0.9, []State{"s2"})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	if g := m.Gamma(); g != 0.9 {
		t.Errorf("expected gamma 0.9, got %v", g)
	}
	if !m.Terminal("s2") {
		t.Error("expected s2 to be terminal")
	}
	if m.Terminal("s0") || m.Terminal("s1") {
		t.Error("expected s0 and s1 to be non-terminal")
	}
	if r := m.Reward("s1", "a1"); r != 2 {
		t.Errorf("expected reward 2 for (s1, a1), got %v", r)
	}
	if r := m.Reward("s2", "a0"); r != 0 {
		t.Errorf("expected missing reward entries to read 0, got %v", r)
	}

	nonTerminal := m.NonTerminalStates()
	if len(nonTerminal) != 2 || nonTerminal[0] != "s0" ||
		nonTerminal[1] != "s1" {
		t.Errorf("expected non-terminal states [s0 s1], got %v", nonTerminal)
	}
}

func TestNewPreservesEnumerationOrder(t *testing.T) {
	m, err := New(chainStates(), chainActions(), chainKernel(),
		chainRewards(), 0.9, []State{"s2"})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	states := m.States()
	for i, s := range chainStates() {
		if states[i] != s {
			t.Fatalf("state order changed: expected %v at %d, got %v",
				s, i, states[i])
		}
	}

	actions := m.Actions()
	for i, a := range chainActions() {
		if actions[i] != a {
			t.Fatalf("action order changed: expected %v at %d, got %v",
				a, i, actions[i])
		}
	}

	// Accessors hand out copies, so callers cannot reorder the MDP's
	// enumeration.
	actions[0], actions[1] = actions[1], actions[0]
	if m.Actions()[0] != "a0" {
		t.Error("mutating the returned action slice changed the MDP")
	}
}

func TestNewRejectsUnnormalizedTransitions(t *testing.T) {
	kernel := chainKernel()
	kernel["s0"]["a0"] = []Transition{
		{Prob: 0.7, Next: "s0"},
		{Prob: 0.2, Next: "s1"},
	}

	_, err := New(chainStates(), chainActions(), kernel, chainRewards(),
		0.9, []State{"s2"})
	if err == nil {
		t.Error("expected error for probabilities summing to 0.9")
	}
}

func TestNewRejectsUnknownSuccessor(t *testing.T) {
	kernel := chainKernel()
	kernel["s1"]["a1"] = []Transition{{Prob: 1.0, Next: "s9"}}

	_, err := New(chainStates(), chainActions(), kernel, chainRewards(),
		0.9, []State{"s2"})
	if err == nil {
		t.Error("expected error for transition to unknown state")
	}
}

func TestNewRejectsNegativeProbability(t *testing.T) {
	kernel := chainKernel()
	kernel["s0"]["a1"] = []Transition{
		{Prob: 1.5, Next: "s1"},
		{Prob: -0.5, Next: "s2"},
	}

	_, err := New(chainStates(), chainActions(), kernel, chainRewards(),
		0.9, []State{"s2"})
	if err == nil {
		t.Error("expected error for negative transition probability")
	}
}

func TestNewRejectsMissingTransitions(t *testing.T) {
	kernel := chainKernel()
	delete(kernel["s1"], "a1")

	_, err := New(chainStates(), chainActions(), kernel, chainRewards(),
		0.9, []State{"s2"})
	if err == nil {
		t.Error("expected error for non-terminal state missing an action")
	}
}

func TestNewRejectsEmptySets(t *testing.T) {
	_, err := New(nil, chainActions(), chainKernel(), chainRewards(),
		0.9, nil)
	if err == nil {
		t.Error("expected error for empty state set")
	}

	_, err = New(chainStates(), nil, chainKernel(), chainRewards(),
		0.9, nil)
	if err == nil {
		t.Error("expected error for empty action set")
	}
}

func TestNewRejectsInvalidDiscount(t *testing.T) {
	for _, gamma := range []float64{-0.1, 1.0, 1.5} {
		_, err := New(chainStates(), chainActions(), chainKernel(),
			chainRewards(), gamma, []State{"s2"})
		if err == nil {
			t.Errorf("expected error for gamma = %v", gamma)
		}
	}
}

func TestNewRejectsUnknownTerminal(t *testing.T) {
	_, err := New(chainStates(), chainActions(), chainKernel(),
		chainRewards(), 0.9, []State{"s9"})
	if err == nil {
		t.Error("expected error for unknown terminal state")
	}
}

func TestNewQTableZeroInitialized(t *testing.T) {
	m, err := New(chainStates(), chainActions(), chainKernel(),
		chainRewards(), 0.9, []State{"s2"})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	table := NewQTable(m)
	for _, s := range m.States() {
		for _, a := range m.Actions() {
			if table[s][a] != 0 {
				t.Errorf("expected Q(%v, %v) = 0, got %v", s, a, table[s][a])
			}
		}
	}
}
