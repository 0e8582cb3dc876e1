// Package config loads the ruleset configuration for storylint.
//
// The rule set (vocabularies, NFR trigger keywords, INVEST thresholds) is a
// configuration surface, not hard-coded logic: the evaluator's history shows
// lenient and strict variants, so every threshold is an explicit parameter
// overridable from an optional storylint.yaml. A malformed configuration is
// the only fatal error class in the whole program.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"storylint/internal/analysis"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "storylint.yaml"

// Config is the file-level configuration shape.
type Config struct {
	Vocabulary VocabularyConfig    `yaml:"vocabulary"`
	NFR        map[string][]string `yaml:"nfr_categories"`
	Invest     InvestConfig        `yaml:"invest"`
	Workers    int                 `yaml:"workers"`
	HistoryDir string              `yaml:"history_dir"`
}

// VocabularyConfig overrides the fixed term sets.
type VocabularyConfig struct {
	AmbiguousTerms        []string `yaml:"ambiguous_terms"`
	IncompletenessMarkers []string `yaml:"incompleteness_markers"`
}

// InvestConfig selects and tunes the INVEST ruleset.
type InvestConfig struct {
	// Variant selects the base ruleset: "lenient" (default) or "strict".
	Variant string `yaml:"variant"`
	// Threshold overrides; zero means keep the variant's value.
	NegotiableMaxWords int      `yaml:"negotiable_max_words"`
	SmallMaxWords      int      `yaml:"small_max_words"`
	TestabilitySignals []string `yaml:"testability_signals"`
}

// Default returns the process defaults: built-in vocabularies, lenient INVEST
// ruleset, and a worker count of 4.
func Default() *Config {
	return &Config{
		Invest:  InvestConfig{Variant: "lenient"},
		Workers: 4,
	}
}

// Load returns the defaults overlaid with the YAML file at path, if it
// exists. A missing file is not an error; an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the analysis layer would also reject, plus
// the file-level fields. Called before any artifact is read.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	switch c.Invest.Variant {
	case "", "lenient", "strict":
	default:
		return fmt.Errorf("config: unknown invest variant %q: must be lenient or strict", c.Invest.Variant)
	}
	if c.Invest.NegotiableMaxWords < 0 || c.Invest.SmallMaxWords < 0 {
		return fmt.Errorf("config: invest word ceilings must not be negative")
	}
	return c.Analysis().Validate()
}

// Analysis resolves the file-level configuration into the analysis layer's
// rule configuration.
func (c *Config) Analysis() analysis.Config {
	out := analysis.DefaultConfig()

	if len(c.Vocabulary.AmbiguousTerms) > 0 {
		out.Vocabulary.AmbiguousTerms = c.Vocabulary.AmbiguousTerms
	}
	if len(c.Vocabulary.IncompletenessMarkers) > 0 {
		out.Vocabulary.IncompletenessMarkers = c.Vocabulary.IncompletenessMarkers
	}
	if len(c.NFR) > 0 {
		out.NFRCategories = analysis.NFRCategories(c.NFR)
	}

	if c.Invest.Variant == "strict" {
		out.Invest = analysis.StrictINVESTRuleset()
	}
	if c.Invest.NegotiableMaxWords > 0 {
		out.Invest.NegotiableMaxWords = c.Invest.NegotiableMaxWords
	}
	if c.Invest.SmallMaxWords > 0 {
		out.Invest.SmallMaxWords = c.Invest.SmallMaxWords
	}
	if len(c.Invest.TestabilitySignals) > 0 {
		out.Invest.TestabilitySignals = c.Invest.TestabilitySignals
	}

	return out
}
