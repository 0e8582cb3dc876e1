package analysis

import (
	"fmt"

	"storylint/internal/lang"
)

// Record is one input artifact pair as supplied by a batch source. Either
// field may be blank; absence is analyzed, not rejected.
type Record struct {
	Story              string `json:"story"`
	AcceptanceCriteria string `json:"acceptance_criteria"`
}

// Row is the complete analysis of one Record: every checker's verdict, the
// merged severity, and both rewrites. Exactly one Row exists per input
// Record, malformed input included.
type Row struct {
	Record Record `json:"record"`

	Structure  Verdict    `json:"structure"`
	StoryParts StoryParts `json:"story_parts"`

	StoryAmbiguity    Verdict  `json:"story_ambiguity"`
	StorySeverity     Severity `json:"story_severity"`
	CriteriaAmbiguity Verdict  `json:"criteria_ambiguity"`
	CriteriaSeverity  Severity `json:"criteria_severity"`

	Invest        ScoreCard `json:"invest"`
	InvestSummary string    `json:"invest_summary"`

	Gherkin GherkinVerdict `json:"gherkin"`

	NFR           Verdict  `json:"nfr"`
	NFRCategories []string `json:"nfr_categories,omitempty"`

	Automation          Tier   `json:"automation"`
	AutomationRationale string `json:"automation_rationale"`

	MergedSeverity Severity `json:"merged_severity"`

	StoryRewrite    RewriteResult `json:"story_rewrite"`
	CriteriaRewrite RewriteResult `json:"criteria_rewrite"`
}

// Config bundles the static rule configuration for an Analyzer.
type Config struct {
	Vocabulary    Vocabulary
	NFRCategories NFRCategories
	Invest        INVESTRuleset
}

// DefaultConfig returns the default vocabularies and the lenient INVEST
// ruleset.
func DefaultConfig() Config {
	return Config{
		Vocabulary:    DefaultVocabulary(),
		NFRCategories: DefaultNFRCategories(),
		Invest:        DefaultINVESTRuleset(),
	}
}

// Validate checks every configuration surface. Any violation is fatal for
// the run: the batch must not start on a malformed rule set.
func (c Config) Validate() error {
	if err := c.Vocabulary.Validate(); err != nil {
		return err
	}
	if err := c.NFRCategories.Validate(); err != nil {
		return err
	}
	return c.Invest.Validate()
}

// Analyzer bundles the checkers behind a single-record entry point. It is
// immutable after construction and safe for concurrent use: every method is
// a pure function over the input text and the read-only configuration.
type Analyzer struct {
	structure  *StructureChecker
	ambiguity  *AmbiguityDetector
	invest     *INVESTEvaluator
	gherkin    *GherkinValidator
	nfr        *NFRClassifier
	automation *AutomationScorer
	rewriter   *Rewriter
}

// NewAnalyzer constructs an Analyzer from a validated configuration.
// A nil tagger disables advisory extraction but never fails analysis.
func NewAnalyzer(cfg Config, tagger lang.Tagger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	return &Analyzer{
		structure:  NewStructureChecker(tagger),
		ambiguity:  NewAmbiguityDetector(cfg.Vocabulary, tagger),
		invest:     NewINVESTEvaluator(cfg.Invest),
		gherkin:    NewGherkinValidator(cfg.Vocabulary),
		nfr:        NewNFRClassifier(cfg.NFRCategories),
		automation: NewAutomationScorer(),
		rewriter:   NewRewriter(cfg.Vocabulary),
	}, nil
}

// Analyze runs the full pipeline over one record: the six checkers (order
// independent), the severity merger, and both rewrites. It never returns an
// error; malformed input surfaces as failing verdicts in the row.
func (a *Analyzer) Analyze(rec Record) Row {
	row := Row{Record: rec}

	row.Structure, row.StoryParts = a.structure.Check(rec.Story)
	row.StoryAmbiguity, row.StorySeverity = a.ambiguity.CheckWithSeverity(rec.Story)
	row.CriteriaAmbiguity, row.CriteriaSeverity = a.ambiguity.CheckWithSeverity(rec.AcceptanceCriteria)
	row.Invest, row.InvestSummary = a.invest.Evaluate(rec.Story)
	row.Gherkin = a.gherkin.Validate(rec.AcceptanceCriteria)
	row.NFR, row.NFRCategories = a.nfr.Classify(rec.Story + "\n" + rec.AcceptanceCriteria)
	row.Automation, row.AutomationRationale = a.automation.Score(rec.AcceptanceCriteria)

	// The merger sees the worst ambiguity signal from either artifact, so a
	// clean criterion cannot mask a TBD story.
	row.MergedSeverity = MergeSeverity(row.Gherkin, maxSeverity(row.StorySeverity, row.CriteriaSeverity))

	row.StoryRewrite = a.rewriter.Story(rec.Story)
	row.CriteriaRewrite = a.rewriter.Gherkin(rec.AcceptanceCriteria)

	return row
}

// RewriteStory exposes the story rewrite as a standalone entry point.
func (a *Analyzer) RewriteStory(story string) RewriteResult {
	return a.rewriter.Story(story)
}

// RewriteCriteria exposes the acceptance-criteria rewrite as a standalone
// entry point.
func (a *Analyzer) RewriteCriteria(ac string) RewriteResult {
	return a.rewriter.Gherkin(ac)
}
