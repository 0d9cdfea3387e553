package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dusk-indust/brief/internal/config"
	"github.com/dusk-indust/brief/internal/export"
	"github.com/dusk-indust/brief/internal/orchestrator"
)

// runBatch researches every topic listed in the -batch file. Reports are
// saved unless -save=no. Failed topics are listed and make the command fail
// after all topics have been attempted.
func runBatch(ctx context.Context, pipeline *orchestrator.Pipeline, s config.Settings, flags *cliFlags, std streams) error {
	save, decided, err := parseSaveFlag(flags.Save)
	if err != nil {
		return err
	}
	if !decided {
		save = true
	}

	topics, err := readTopics(flags.Batch)
	if err != nil {
		return err
	}
	if len(topics) == 0 {
		return fmt.Errorf("batch file %s lists no topics", flags.Batch)
	}

	done := printProgress(pipeline.Progress(), std.out, true)
	results := orchestrator.RunBatch(ctx, pipeline, topics, flags.Concurrency)
	pipeline.Close()
	<-done

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !save {
			printFinalSummary(std.out, r.Run)
			continue
		}
		path := filepath.Join(s.OutputDir, export.DefaultFilename(r.Topic, s.Format))
		if err := export.Save(path, s.Format, r.Run); err != nil {
			fmt.Fprintf(std.err, "error: save report for %q: %v\n", r.Topic, err)
			continue
		}
		fmt.Fprintf(std.out, "Results saved to %s\n", path)
	}

	failed := orchestrator.Failed(results)
	for _, r := range failed {
		fmt.Fprintf(std.err, "failed: %s: %v\n", r.Topic, r.Err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d topics failed", len(failed), len(results))
	}
	return nil
}

// readTopics returns the non-blank lines of path. Lines starting with # are
// comments.
func readTopics(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var topics []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		topics = append(topics, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return topics, nil
}
