// Package analysis implements the requirement quality analysis pipeline.
//
// It evaluates written agile artifacts (user stories and their acceptance
// criteria) against a fixed set of quality rules: structural pattern,
// ambiguity, the six INVEST principles, Given/When/Then structure,
// non-functional-requirement coverage, and automation readiness. Each checker
// is a pure function over its input text and the static vocabulary
// configuration; the Analyzer bundles them into a single-record entry point.
package analysis

import "fmt"

// Outcome is a checker's pass/fail result.
type Outcome string

const (
	Pass Outcome = "Pass"
	Fail Outcome = "Fail"
)

// Severity ranks how serious a detected quality issue is.
// The order matters: remediation priority rises with the value.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the human-readable severity label.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "None"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	case SeverityCritical:
		return "Critical"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Verdict is the (outcome, message) pair every checker produces.
type Verdict struct {
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

// Passed reports whether the verdict is a pass.
func (v Verdict) Passed() bool {
	return v.Outcome == Pass
}

// pass and fail are shorthand constructors used throughout the checkers.
func pass(message string) Verdict {
	return Verdict{Outcome: Pass, Message: message}
}

func fail(message string) Verdict {
	return Verdict{Outcome: Fail, Message: message}
}

// GherkinCode identifies which stage of the Gherkin gate a verdict came from.
// The severity merger matches on codes rather than message text so the
// precedence rules stay auditable.
type GherkinCode string

const (
	GherkinOK              GherkinCode = "ok"
	GherkinMissingInput    GherkinCode = "missing_input"
	GherkinIncomplete      GherkinCode = "incomplete"
	GherkinMissingKeywords GherkinCode = "missing_keywords"
	GherkinWrongOrder      GherkinCode = "wrong_order"
)

// GherkinVerdict is a Verdict with the gate stage that produced it.
type GherkinVerdict struct {
	Verdict
	Code GherkinCode `json:"code"`
}
