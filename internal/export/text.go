package export

import (
	"fmt"
	"strings"

	"github.com/dusk-indust/brief/internal/orchestrator"
)

// rule separates the header and the sections of a text report.
var rule = strings.Repeat("=", 50)

// RenderText lays a run out as a plain-text report:
//
//	RESEARCH REPORT: <topic>
//	==================================================
//
//	RESEARCH DATA:
//	...
func RenderText(run *orchestrator.Run) (string, error) {
	body, err := orchestrator.AssembleReport(run, "\n\n"+rule+"\n\n")
	if err != nil {
		return "", fmt.Errorf("assemble report: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "RESEARCH REPORT: %s\n", run.Topic)
	b.WriteString(rule + "\n\n")
	b.WriteString(body)
	return b.String(), nil
}
