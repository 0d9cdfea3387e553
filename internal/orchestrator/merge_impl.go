package orchestrator

import (
	"fmt"
	"strings"
)

// ReportMergePlan orders the full report as the stages ran.
var ReportMergePlan = MergePlan{
	SectionOrder: []string{StageResearch.String(), StageAnalysis.String(), StageSummary.String()},
}

// Merger combines stage outputs according to a MergePlan.
type Merger struct {
	plan MergePlan
}

// NewMerger creates a Merger with the given merge plan.
func NewMerger(plan MergePlan) *Merger {
	return &Merger{plan: plan}
}

// Merge combines sections according to the merge plan's section order.
// It validates that every section in the plan has a corresponding Section,
// checks for duplicate section names, sorts by plan order, and appends
// any extra sections not in the plan at the end.
func (m *Merger) Merge(sections []Section) (string, error) {
	seen := make(map[string]int, len(sections))
	for _, sec := range sections {
		seen[sec.Name]++
	}
	var duplicates []string
	for name, count := range seen {
		if count > 1 {
			duplicates = append(duplicates, fmt.Sprintf("%q (x%d)", name, count))
		}
	}
	if len(duplicates) > 0 {
		return "", fmt.Errorf("merge: duplicate section names: %s", strings.Join(duplicates, ", "))
	}

	byName := make(map[string]Section, len(sections))
	for _, sec := range sections {
		byName[sec.Name] = sec
	}

	var missing []string
	for _, name := range m.plan.SectionOrder {
		if _, ok := byName[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("merge: missing sections required by plan: %s", strings.Join(missing, ", "))
	}

	planned := make(map[string]bool, len(m.plan.SectionOrder))
	for _, name := range m.plan.SectionOrder {
		planned[name] = true
	}

	ordered := make([]string, 0, len(sections))
	for _, name := range m.plan.SectionOrder {
		ordered = append(ordered, byName[name].Content)
	}

	// Extras keep their input order.
	for _, sec := range sections {
		if !planned[sec.Name] {
			ordered = append(ordered, sec.Content)
		}
	}

	sep := m.plan.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Join(ordered, sep), nil
}

// RunSections turns a run's stage outputs into titled sections:
// "<TITLE>:\n<output>".
func RunSections(run *Run) []Section {
	sections := make([]Section, 0, len(run.Stages))
	for _, res := range run.Stages {
		sections = append(sections, Section{
			Name:    res.Stage.String(),
			Content: res.Stage.Title() + ":\n" + run.Output(res.Stage),
		})
	}
	return sections
}

// AssembleReport merges every stage of a finished run into one text using
// ReportMergePlan with the given separator.
func AssembleReport(run *Run, separator string) (string, error) {
	plan := ReportMergePlan
	plan.Separator = separator
	return NewMerger(plan).Merge(RunSections(run))
}
