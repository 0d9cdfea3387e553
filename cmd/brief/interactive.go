package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dusk-indust/brief/internal/config"
	"github.com/dusk-indust/brief/internal/export"
	"github.com/dusk-indust/brief/internal/orchestrator"
)

const bannerWidth = 60

// runInteractive asks for a topic, runs the pipeline, prints the final
// summary and offers to save the full report.
func runInteractive(ctx context.Context, pipeline *orchestrator.Pipeline, s config.Settings, flags *cliFlags, std streams) error {
	save, decided, err := parseSaveFlag(flags.Save)
	if err != nil {
		return err
	}

	p := newPrompter(std.in, std.out)

	topic := strings.TrimSpace(flags.Topic)
	if topic == "" {
		topic, err = p.ask(ctx, "Enter a research topic: ")
		if err != nil {
			return fmt.Errorf("read topic: %w", err)
		}
	}

	fmt.Fprintln(std.out, orchestrator.FormatRunHeader(topic))
	done := printProgress(pipeline.Progress(), std.out, false)
	run, err := pipeline.Run(ctx, topic)
	pipeline.Close()
	<-done
	if err != nil {
		return err
	}

	printFinalSummary(std.out, run)

	if !decided {
		// End of input counts as a no.
		save, _ = p.confirm(ctx, "\nSave full report to file? (y/n): ")
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if !save {
		return nil
	}

	path := filepath.Join(s.OutputDir, export.DefaultFilename(run.Topic, s.Format))
	if err := export.Save(path, s.Format, run); err != nil {
		// The report has already been printed; a failed save is not fatal.
		fmt.Fprintf(std.err, "error: save report: %v\n", err)
		return nil
	}
	fmt.Fprintf(std.out, "Results saved to %s\n", path)
	return nil
}

// printProgress writes progress events until events is closed. The returned
// channel is closed once every event has been written.
func printProgress(events <-chan orchestrator.ProgressEvent, w io.Writer, withTopic bool) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			if ev.Status == orchestrator.ProgressPending {
				continue
			}
			line := orchestrator.FormatProgress(ev)
			if withTopic {
				line = fmt.Sprintf("[%s]%s", ev.Topic, line)
			}
			fmt.Fprintln(w, line)
		}
	}()
	return done
}

func printFinalSummary(w io.Writer, run *orchestrator.Run) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\nFINAL SUMMARY:\n%s\n%s\n", rule, rule, run.FinalReport())
}
