package analysis

import (
	"fmt"
	"strings"
)

// NFRClassifier detects which non-functional-requirement categories an
// artifact touches. This models detection of intent, not correctness of the
// NFR statement itself.
type NFRClassifier struct {
	categories NFRCategories
}

// NewNFRClassifier constructs an NFRClassifier.
func NewNFRClassifier(categories NFRCategories) *NFRClassifier {
	return &NFRClassifier{categories: categories}
}

// Classify returns Pass with the covered category names when at least one
// category's trigger keyword occurs in the text, else Fail.
func (c *NFRClassifier) Classify(text string) (Verdict, []string) {
	lower := strings.ToLower(text)

	var covered []string
	for _, name := range c.categories.Names() {
		for _, kw := range c.categories[name] {
			if strings.Contains(lower, strings.ToLower(kw)) {
				covered = append(covered, name)
				break
			}
		}
	}

	if len(covered) == 0 {
		return fail("No NFR coverage detected."), nil
	}
	return pass(fmt.Sprintf("Covers NFR categories: %s.", strings.Join(covered, ", "))), covered
}
