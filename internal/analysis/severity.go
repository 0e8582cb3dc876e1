package analysis

// severityRule is one row of the merge precedence table.
type severityRule struct {
	name   string
	match  func(gherkin GherkinVerdict, ambiguity Severity) bool
	result Severity
}

// severityRules is the fixed precedence, evaluated top-down, first match
// wins. Incompleteness always dominates structural errors, which dominate
// plain ambiguity. Missing input sits with incompleteness: an absent
// criterion is incomplete by definition.
var severityRules = []severityRule{
	{
		name: "gherkin incompleteness",
		match: func(g GherkinVerdict, _ Severity) bool {
			return g.Code == GherkinIncomplete || g.Code == GherkinMissingInput
		},
		result: SeverityCritical,
	},
	{
		name: "critical ambiguity",
		match: func(_ GherkinVerdict, a Severity) bool {
			return a == SeverityCritical
		},
		result: SeverityCritical,
	},
	{
		name: "gherkin structure violation",
		match: func(g GherkinVerdict, _ Severity) bool {
			return g.Code == GherkinMissingKeywords || g.Code == GherkinWrongOrder
		},
		result: SeverityHigh,
	},
	{
		name: "medium ambiguity",
		match: func(_ GherkinVerdict, a Severity) bool {
			return a == SeverityMedium
		},
		result: SeverityMedium,
	},
}

// maxSeverity returns the higher of two severities.
func maxSeverity(a, b Severity) Severity {
	if a > b {
		return a
	}
	return b
}

// MergeSeverity reconciles the Gherkin verdict and the ambiguity severity
// into one overall level via the precedence table. Falls through to None.
func MergeSeverity(gherkin GherkinVerdict, ambiguity Severity) Severity {
	for _, rule := range severityRules {
		if rule.match(gherkin, ambiguity) {
			return rule.result
		}
	}
	return SeverityNone
}
