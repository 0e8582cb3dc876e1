package analysis

import (
	"fmt"
	"strings"
)

// gherkinKeywords in required order of first occurrence.
var gherkinKeywords = []string{"given", "when", "then"}

// GherkinValidator checks acceptance criteria for Given/When/Then structure.
//
// The validation is a strict linear gate: presence, incompleteness, keyword
// completeness, ordering. Each stage is terminal on failure; there is no
// partial credit.
type GherkinValidator struct {
	vocab Vocabulary
}

// NewGherkinValidator constructs a GherkinValidator.
func NewGherkinValidator(vocab Vocabulary) *GherkinValidator {
	return &GherkinValidator{vocab: vocab}
}

// Validate runs the gate over an acceptance-criteria block.
func (g *GherkinValidator) Validate(ac string) GherkinVerdict {
	if strings.TrimSpace(ac) == "" {
		return GherkinVerdict{
			Verdict: fail("No acceptance criteria provided."),
			Code:    GherkinMissingInput,
		}
	}

	if g.vocab.ContainsIncompleteness(ac) {
		return GherkinVerdict{
			Verdict: fail("Contains TBD / incomplete information."),
			Code:    GherkinIncomplete,
		}
	}

	lower := strings.ToLower(ac)

	var missing []string
	for _, kw := range gherkinKeywords {
		if !strings.Contains(lower, kw) {
			missing = append(missing, kw)
		}
	}
	if len(missing) > 0 {
		return GherkinVerdict{
			Verdict: fail(fmt.Sprintf("Missing Gherkin keyword(s): %s.", strings.Join(missing, ", "))),
			Code:    GherkinMissingKeywords,
		}
	}

	given := strings.Index(lower, "given")
	when := strings.Index(lower, "when")
	then := strings.Index(lower, "then")
	if !(given < when && when < then) {
		return GherkinVerdict{
			Verdict: fail("Incorrect Given/When/Then order."),
			Code:    GherkinWrongOrder,
		}
	}

	return GherkinVerdict{
		Verdict: pass("Valid Gherkin format."),
		Code:    GherkinOK,
	}
}
