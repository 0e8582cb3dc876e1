package analysis

import (
	"regexp"

	"storylint/internal/lang"
)

// storyPattern is the canonical "As a/an ... I want ... so that ..." shape.
// This literal match is the sole driver of the structure verdict.
var storyPattern = regexp.MustCompile(`(?is)as (a|an) .* i want .* so that .*`)

// StoryParts holds the advisory extraction from the dependency-role labels.
// Empty fields mean the tagger could not identify that part; the verdict is
// unaffected either way.
type StoryParts struct {
	Role    string `json:"role,omitempty"`
	Action  string `json:"action,omitempty"`
	Benefit string `json:"benefit,omitempty"`
}

// StructureChecker validates the canonical user story shape.
type StructureChecker struct {
	tagger lang.Tagger
}

// NewStructureChecker constructs a StructureChecker. The tagger may be nil;
// advisory extraction is then skipped entirely.
func NewStructureChecker(tagger lang.Tagger) *StructureChecker {
	return &StructureChecker{tagger: tagger}
}

// Check returns the structure verdict plus the advisory story parts.
// A tagger failure only blanks the advisory fields; the pattern match still
// decides the outcome.
func (c *StructureChecker) Check(story string) (Verdict, StoryParts) {
	parts := c.extract(story)

	if storyPattern.MatchString(story) {
		return pass("Follows the 'As a ... I want ... so that ...' user story pattern."), parts
	}
	return fail("Does not follow the 'As a ... I want ... so that ...' format."), parts
}

// extract pulls role, action, and benefit from the tagger's labels.
func (c *StructureChecker) extract(story string) StoryParts {
	var parts StoryParts
	if c.tagger == nil {
		return parts
	}
	tokens, err := c.tagger.Tag(story)
	if err != nil {
		return parts
	}
	for _, tok := range tokens {
		switch tok.Dep {
		case lang.DepSubject:
			if parts.Role == "" {
				parts.Role = tok.Text
			}
		case lang.DepRoot:
			if parts.Action == "" {
				parts.Action = tok.Lemma
			}
		case lang.DepAdvcl:
			if parts.Benefit == "" {
				parts.Benefit = tok.Text
			}
		}
	}
	return parts
}
