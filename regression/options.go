package regression

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/arloliu/quantreg/errs"
	"github.com/arloliu/quantreg/internal/options"
)

// QuantileRule selects how the weighted quantile is read off the sorted ratios.
type QuantileRule int

const (
	// QuantileRuleFirstReached returns the first ratio whose cumulative weight
	// reaches τ·W. It never interpolates.
	QuantileRuleFirstReached QuantileRule = iota
	// QuantileRuleInterpolated behaves like QuantileRuleFirstReached except when
	// τ·W equals a cumulative-weight boundary exactly; then it returns the
	// midpoint of the ratios on either side of that boundary.
	QuantileRuleInterpolated
)

var quantileRuleNames = map[QuantileRule]string{
	QuantileRuleFirstReached: "first-reached",
	QuantileRuleInterpolated: "interpolated",
}

// String returns the string representation of the rule.
func (r QuantileRule) String() string {
	if name, ok := quantileRuleNames[r]; ok {
		return name
	}

	return "unknown"
}

// QuantileRuleFromString returns the rule for a given name.
// Returns QuantileRule(-1) for unknown names.
func QuantileRuleFromString(name string) QuantileRule {
	name = strings.ToLower(strings.TrimSpace(name))
	for rule, ruleName := range quantileRuleNames {
		if ruleName == name {
			return rule
		}
	}

	return QuantileRule(-1)
}

// FitConfig holds the settings shared by Fit, Analyze and FitEach.
type FitConfig struct {
	Rule QuantileRule
	// Concurrency bounds the number of sets FitEach fits at once.
	Concurrency int
}

func defaultFitConfig() FitConfig {
	return FitConfig{
		Rule:        QuantileRuleFirstReached,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithQuantileRule sets the weighted-quantile rule.
func WithQuantileRule(rule QuantileRule) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if _, ok := quantileRuleNames[rule]; !ok {
			return fmt.Errorf("%w: unknown quantile rule %d", errs.ErrInvalidInput, int(rule))
		}
		cfg.Rule = rule

		return nil
	})
}

// WithConcurrency sets how many sets FitEach fits in parallel. It has no effect
// on Fit or Analyze.
func WithConcurrency(n int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: concurrency must be positive, got %d", errs.ErrInvalidInput, n)
		}
		cfg.Concurrency = n

		return nil
	})
}
