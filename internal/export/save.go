package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dusk-indust/brief/internal/orchestrator"
)

// Format is an on-disk report layout.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// FilePrefix starts the name of every report written by DefaultFilename.
const FilePrefix = "research_report_"

// ParseFormat accepts a format name or common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Ext returns the file extension, with dot, used for f.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// FormatFromPath infers the format from a file extension. Unknown
// extensions are treated as text.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return FormatText
	}
	return f
}

// DefaultFilename returns research_report_<topic>.<ext>, with spaces in the
// topic replaced by underscores and path separators removed.
func DefaultFilename(topic string, f Format) string {
	name := strings.TrimSpace(topic)
	name = strings.NewReplacer("/", "", "\\", "", string(os.PathSeparator), "").Replace(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == ".." {
		name = "untitled"
	}
	return FilePrefix + name + f.Ext()
}

// Render lays out run in format f.
func Render(run *orchestrator.Run, f Format, opts ...Option) (string, error) {
	switch f {
	case FormatJSON:
		return RenderJSON(run, opts...)
	case FormatMarkdown:
		return RenderMarkdown(run)
	case FormatText, "":
		return RenderText(run)
	default:
		return "", fmt.Errorf("unknown report format %q", f)
	}
}

// Save renders run in format f and writes it to path, creating directories
// as needed.
func Save(path string, f Format, run *orchestrator.Run, opts ...Option) error {
	content, err := Render(run, f, opts...)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return writeOutputFile(path, content)
}

// writeOutputFile writes content to the given path, creating directories as
// needed.
func writeOutputFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
