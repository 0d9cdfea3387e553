package orchestrator

// DefaultSeparator joins sections when a plan does not set one.
const DefaultSeparator = "\n\n---\n\n"

// MergePlan describes how to combine sections into a report. Sections are
// joined in SectionOrder; sections not named there follow in input order.
type MergePlan struct {
	SectionOrder []string // section names in report order
	Separator    string   // placed between sections; DefaultSeparator if empty
}

// ReportIssue is a problem found while checking the final report.
type ReportIssue struct {
	Section     string // section the issue was found in
	Description string
}
