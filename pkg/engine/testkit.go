package engine

import (
	"fmt"
)

// TestFailure records one rule self-test sentence that did not behave as
// its test block declares.
type TestFailure struct {
	RuleName string
	Sentence string
	Positive bool
}

func (f TestFailure) String() string {
	if f.Positive {
		return fmt.Sprintf("rule %s: expected a match for %q, got none", f.RuleName, f.Sentence)
	}
	return fmt.Sprintf("rule %s: expected no match for %q, got one", f.RuleName, f.Sentence)
}

// RunRuleTests runs every rule's embedded test block through the engine:
// each positive sentence must yield at least one span from that rule, each
// negative sentence none. Sentences that fail to annotate count as
// failures of the sentence, not of the engine.
func (e *Engine) RunRuleTests() ([]TestFailure, error) {
	if e.annotator == nil {
		return nil, fmt.Errorf("no annotator configured")
	}
	var failures []TestFailure
	for _, cr := range e.rules {
		rule := cr.rule
		for _, sentence := range rule.Test.Positive {
			matched, err := e.ruleMatches(rule.Name, sentence)
			if err != nil {
				return nil, fmt.Errorf("rule %q positive %q: %w", rule.Name, sentence, err)
			}
			if !matched {
				failures = append(failures, TestFailure{RuleName: rule.Name, Sentence: sentence, Positive: true})
			}
		}
		for _, sentence := range rule.Test.Negative {
			matched, err := e.ruleMatches(rule.Name, sentence)
			if err != nil {
				return nil, fmt.Errorf("rule %q negative %q: %w", rule.Name, sentence, err)
			}
			if matched {
				failures = append(failures, TestFailure{RuleName: rule.Name, Sentence: sentence, Positive: false})
			}
		}
	}
	return failures, nil
}

func (e *Engine) ruleMatches(name, sentence string) (bool, error) {
	spans, err := e.Process(sentence)
	if err != nil {
		return false, err
	}
	for _, sp := range spans {
		if sp.RuleName == name {
			return true, nil
		}
	}
	return false, nil
}
