package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// Axis names in canonical INVEST order.
var investAxes = []string{
	"Independent", "Negotiable", "Valuable", "Estimable", "Small", "Testable",
}

// INVESTRuleset parameterizes the evaluator's thresholds. The rule set has
// evolved between a lenient and a strict variant; modeling it as configuration
// keeps that evolution out of the code.
type INVESTRuleset struct {
	// StrictIndependent switches the Independent axis from the literal
	// "and" check to the dependency-smell regex.
	StrictIndependent bool
	// NegotiableMaxWords is the word-count ceiling for Negotiable.
	NegotiableMaxWords int
	// NegotiableAndLimit, when positive, additionally requires more than
	// this many "and" occurrences before the length ceiling fails the axis
	// (the strict variant's combined rule).
	NegotiableAndLimit int
	// RequireNumericEvidence makes Estimable fail when no digit appears.
	RequireNumericEvidence bool
	// SmallMaxWords is the word-count ceiling for Small.
	SmallMaxWords int
	// TestabilitySignals is the keyword set at least one of which must be
	// present for Testable.
	TestabilitySignals []string
}

// DefaultINVESTRuleset returns the lenient variant.
func DefaultINVESTRuleset() INVESTRuleset {
	return INVESTRuleset{
		NegotiableMaxWords: 40,
		SmallMaxWords:      50,
		TestabilitySignals: []string{"verify", "validate"},
	}
}

// StrictINVESTRuleset returns the strict variant: regex-based Independent,
// higher ceilings combined with and-repetition, numeric-evidence Estimable,
// and acceptance-criteria testability signals.
func StrictINVESTRuleset() INVESTRuleset {
	return INVESTRuleset{
		StrictIndependent:      true,
		NegotiableMaxWords:     80,
		NegotiableAndLimit:     2,
		RequireNumericEvidence: true,
		SmallMaxWords:          80,
		TestabilitySignals: []string{
			"verify", "validate", "given", "then", "expected", "result",
		},
	}
}

// Validate checks the ruleset invariants.
func (r INVESTRuleset) Validate() error {
	if r.NegotiableMaxWords <= 0 {
		return fmt.Errorf("invest ruleset: negotiable word ceiling must be positive, got %d", r.NegotiableMaxWords)
	}
	if r.SmallMaxWords <= 0 {
		return fmt.Errorf("invest ruleset: small word ceiling must be positive, got %d", r.SmallMaxWords)
	}
	if len(r.TestabilitySignals) == 0 {
		return fmt.Errorf("invest ruleset: testability signal set is empty")
	}
	return nil
}

// ScoreCard maps each INVEST axis to its individual outcome.
type ScoreCard map[string]Outcome

// Failures counts the failing axes.
func (s ScoreCard) Failures() int {
	n := 0
	for _, o := range s {
		if o == Fail {
			n++
		}
	}
	return n
}

// dependencySmell is the strict Independent heuristic: wording that suggests
// the story is a fragment of, or coupled to, other work.
var dependencySmell = regexp.MustCompile(`(?i)story|depends|subtask|part\d+`)

// concreteImplementationTerms are UI or implementation details that make a
// story non-negotiable.
var concreteImplementationTerms = []string{
	"click button", "use react", "use angular", "use vue",
	"database table", "html", "css class", "dropdown",
}

// vagueTimePhrases are temporal hedges that make a story hard to estimate.
var vagueTimePhrases = []string{"sometime", "eventually", "in future"}

var digitPattern = regexp.MustCompile(`\d`)

// INVESTEvaluator scores a story against the six INVEST axes.
type INVESTEvaluator struct {
	rules INVESTRuleset
}

// NewINVESTEvaluator constructs an evaluator with the given ruleset.
func NewINVESTEvaluator(rules INVESTRuleset) *INVESTEvaluator {
	return &INVESTEvaluator{rules: rules}
}

// Evaluate runs all six axis checks, never short-circuiting, and returns
// the score card plus a summary. The summary is a pass message when every
// axis passed, otherwise it reports the failure count and the failing axes.
func (e *INVESTEvaluator) Evaluate(story string) (ScoreCard, string) {
	lower := strings.ToLower(story)
	words := len(strings.Fields(story))

	card := ScoreCard{
		"Independent": outcomeOf(e.independent(lower)),
		"Negotiable":  outcomeOf(e.negotiable(lower, words)),
		"Valuable":    outcomeOf(strings.Contains(lower, "so that")),
		"Estimable":   outcomeOf(e.estimable(lower, story)),
		"Small":       outcomeOf(words <= e.rules.SmallMaxWords),
		"Testable":    outcomeOf(e.testable(lower)),
	}

	failures := card.Failures()
	if failures == 0 {
		return card, "Meets INVEST guidelines."
	}

	var failing []string
	for _, axis := range investAxes {
		if card[axis] == Fail {
			failing = append(failing, axis)
		}
	}
	return card, fmt.Sprintf("%d INVEST weaknesses: %s.", failures, strings.Join(failing, ", "))
}

func (e *INVESTEvaluator) independent(lower string) bool {
	if e.rules.StrictIndependent {
		return !dependencySmell.MatchString(lower)
	}
	// Known over-broad heuristic: flags any conjunction, not just stories
	// that bundle multiple requirements.
	return !containsPhrase(lower, "and")
}

func (e *INVESTEvaluator) negotiable(lower string, words int) bool {
	for _, term := range concreteImplementationTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	if words > e.rules.NegotiableMaxWords {
		if e.rules.NegotiableAndLimit <= 0 {
			return false
		}
		if countPhrase(lower, "and") > e.rules.NegotiableAndLimit {
			return false
		}
	}
	return true
}

func (e *INVESTEvaluator) estimable(lower, original string) bool {
	for _, phrase := range vagueTimePhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	if e.rules.RequireNumericEvidence && !digitPattern.MatchString(original) {
		return false
	}
	return true
}

// testable matches signals as substrings so inflected forms (verifies,
// verifying) count.
func (e *INVESTEvaluator) testable(lower string) bool {
	for _, signal := range e.rules.TestabilitySignals {
		if strings.Contains(lower, strings.ToLower(signal)) {
			return true
		}
	}
	return false
}

// countPhrase counts boundary-delimited occurrences of phrase in lower.
func countPhrase(lower, phrase string) int {
	count := 0
	for start := 0; ; {
		idx := strings.Index(lower[start:], phrase)
		if idx < 0 {
			return count
		}
		idx += start
		end := idx + len(phrase)
		if (idx == 0 || !isWordByte(lower[idx-1])) && (end == len(lower) || !isWordByte(lower[end])) {
			count++
		}
		start = idx + 1
	}
}

func outcomeOf(ok bool) Outcome {
	if ok {
		return Pass
	}
	return Fail
}
