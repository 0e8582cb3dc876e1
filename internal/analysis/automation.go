package analysis

import (
	"strings"
)

// Tier is the coarse automation-readiness level of an acceptance criterion.
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

// errorConditionKeywords signal that the criterion covers a failure path,
// which maps well onto a negative test case.
var errorConditionKeywords = []string{"error", "invalid", "fail", "reject", "denied"}

// AutomationScorer estimates how directly an acceptance criterion maps to an
// automated test. Deterministic, pure function of the text.
type AutomationScorer struct{}

// NewAutomationScorer constructs an AutomationScorer.
func NewAutomationScorer() *AutomationScorer {
	return &AutomationScorer{}
}

// Score accumulates: +2 when all three Gherkin keywords are present, +2 when
// a digit appears (a concrete threshold or metric), +1 when an error or
// invalid-condition keyword appears. Total maps to High (>= 4), Medium (>= 2),
// else Low. The rationale names the signals that contributed.
func (s *AutomationScorer) Score(text string) (Tier, string) {
	lower := strings.ToLower(text)

	score := 0
	var signals []string

	allGherkin := true
	for _, kw := range gherkinKeywords {
		if !strings.Contains(lower, kw) {
			allGherkin = false
			break
		}
	}
	if allGherkin {
		score += 2
		signals = append(signals, "Given/When/Then structure")
	}

	if digitPattern.MatchString(text) {
		score += 2
		signals = append(signals, "concrete metric or threshold")
	}

	for _, kw := range errorConditionKeywords {
		if strings.Contains(lower, kw) {
			score++
			signals = append(signals, "error condition covered")
			break
		}
	}

	tier := TierLow
	switch {
	case score >= 4:
		tier = TierHigh
	case score >= 2:
		tier = TierMedium
	}

	rationale := "No automation signals found."
	if len(signals) > 0 {
		rationale = "Signals: " + strings.Join(signals, "; ") + "."
	}
	return tier, rationale
}
