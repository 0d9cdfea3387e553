package orchestrator

import (
	"fmt"
	"regexp"
	"strings"
)

// codeBlockRe matches fenced code blocks (``` ... ```).
var codeBlockRe = regexp.MustCompile("(?s)```.*?```")

// ExpectedHeadings are the parts the summary template asks for. The
// recommendations part is optional and not checked.
var ExpectedHeadings = []string{
	"Executive Summary",
	"Key Findings",
	"Main Insights",
	"Conclusions",
}

// CheckReport performs a lightweight structural scan of the final report.
// It flags every expected heading that does not appear, case-insensitively,
// outside fenced code blocks. An empty report yields a single issue.
func CheckReport(report string) []ReportIssue {
	section := StageSummary.String()
	cleaned := strings.ToLower(codeBlockRe.ReplaceAllString(report, ""))
	if strings.TrimSpace(cleaned) == "" {
		return []ReportIssue{{Section: section, Description: "report is empty"}}
	}

	var issues []ReportIssue
	for _, h := range ExpectedHeadings {
		if !strings.Contains(cleaned, strings.ToLower(h)) {
			issues = append(issues, ReportIssue{
				Section:     section,
				Description: fmt.Sprintf("missing expected heading %q", h),
			})
		}
	}
	return issues
}
