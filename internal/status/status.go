package status

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dusk-indust/brief/internal/export"
)

// ReportInfo describes one saved report file.
type ReportInfo struct {
	Topic   string // recovered from the file name, underscores shown as spaces
	Path    string
	Format  export.Format
	Size    int64
	ModTime time.Time
}

// ListReports scans dir for files written under export.DefaultFilename and
// returns them newest first. A missing directory yields no reports.
func ListReports(dir string) ([]ReportInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var reports []ReportInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, export.FilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		ext := filepath.Ext(name)
		topic := strings.TrimSuffix(strings.TrimPrefix(name, export.FilePrefix), ext)
		reports = append(reports, ReportInfo{
			Topic:   strings.ReplaceAll(topic, "_", " "),
			Path:    filepath.Join(dir, name),
			Format:  export.FormatFromPath(name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].ModTime.Equal(reports[j].ModTime) {
			return reports[i].Path < reports[j].Path
		}
		return reports[i].ModTime.After(reports[j].ModTime)
	})
	return reports, nil
}
