package mcptools

// --- MCP tool types for the brief server mode (--serve-mcp) ---

// RunResearchInput is the input for the run_research MCP tool.
type RunResearchInput struct {
	Topic  string `json:"topic" jsonschema:"research topic"`
	Save   bool   `json:"save,omitempty" jsonschema:"write the full report to the output directory"`
	Format string `json:"format,omitempty" jsonschema:"report file format: text, json or markdown (default text)"`
}

// RunResearchOutput is the result of the run_research MCP tool.
type RunResearchOutput struct {
	Status      string `json:"status"` // "completed" or "failed"
	RunID       string `json:"runId,omitempty"`
	Topic       string `json:"topic"`
	FinalReport string `json:"finalReport,omitempty"`
	FailedStage string `json:"failedStage,omitempty"`
	Message     string `json:"message,omitempty"`
	SavedTo     string `json:"savedTo,omitempty"`
}

// ListReportsInput is the input for the list_reports MCP tool.
type ListReportsInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"directory to scan (default: configured output directory)"`
}

// ListReportsOutput is the result of the list_reports MCP tool.
type ListReportsOutput struct {
	Reports []ReportSummary `json:"reports"`
}

// ReportSummary is a brief overview of one saved report.
type ReportSummary struct {
	Topic    string `json:"topic"`
	Path     string `json:"path"`
	Format   string `json:"format"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}
