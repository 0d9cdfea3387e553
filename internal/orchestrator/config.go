package orchestrator

import (
	"fmt"

	"github.com/jonboulle/clockwork"
)

// SummaryInputs selects which earlier outputs the summary stage reads.
type SummaryInputs int

const (
	// SummaryFromResearchAndAnalysis feeds both the research and the analysis
	// text to the summary stage.
	SummaryFromResearchAndAnalysis SummaryInputs = iota

	// SummaryFromAnalysis feeds only the analysis text to the summary stage.
	SummaryFromAnalysis
)

func (s SummaryInputs) String() string {
	switch s {
	case SummaryFromResearchAndAnalysis:
		return "research+analysis"
	case SummaryFromAnalysis:
		return "analysis"
	default:
		return "unknown"
	}
}

// ParseSummaryInputs parses the names produced by SummaryInputs.String. An
// empty string selects the default.
func ParseSummaryInputs(s string) (SummaryInputs, error) {
	switch s {
	case "", "research+analysis", "both":
		return SummaryFromResearchAndAnalysis, nil
	case "analysis":
		return SummaryFromAnalysis, nil
	default:
		return 0, fmt.Errorf("unknown summary inputs %q (want \"analysis\" or \"research+analysis\")", s)
	}
}

// Config holds runtime configuration for the pipeline.
type Config struct {
	// SummaryInputs controls whether the summary stage also reads the
	// research text.
	SummaryInputs SummaryInputs

	// CheckReport logs a warning for each expected heading missing from the
	// final report.
	CheckReport bool

	// Clock stamps runs and times stages. Nil means the real clock.
	Clock clockwork.Clock
}

// DefaultConfig returns the configuration used by the CLI when nothing is
// overridden.
func DefaultConfig() Config {
	return Config{
		SummaryInputs: SummaryFromResearchAndAnalysis,
		CheckReport:   true,
	}
}
