package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dusk-indust/brief/internal/orchestrator"
)

// RunExport is the top-level JSON export structure.
type RunExport struct {
	ExportedAt string `json:"exportedAt"`
	*orchestrator.Run
}

// RenderJSON encodes a run as indented JSON with a trailing newline.
// ExportedAt comes from the configured clock.
func RenderJSON(run *orchestrator.Run, opts ...Option) (string, error) {
	o := buildOptions(opts)
	out, err := json.MarshalIndent(RunExport{
		ExportedAt: o.clock.Now().UTC().Format(time.RFC3339),
		Run:        run,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON: %w", err)
	}
	return string(out) + "\n", nil
}
