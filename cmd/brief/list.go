package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/dusk-indust/brief/internal/config"
	"github.com/dusk-indust/brief/internal/status"
)

// runList prints the reports saved in the output directory, newest first.
func runList(args []string, std streams) error {
	fs := flag.NewFlagSet("brief list", flag.ContinueOnError)
	fs.SetOutput(std.err)
	dir := fs.String("output", "", "directory to scan (default: configured output directory)")
	configDir := fs.String("config-dir", ".", "directory containing brief.yml")
	envFile := fs.String("env-file", "", "path to a .env file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *dir == "" {
		project, err := config.Load(*configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		env, err := projectEnv(*envFile, project)
		if err != nil {
			return err
		}
		s, err := config.Resolve(project, env, config.Overrides{})
		if err != nil {
			return err
		}
		*dir = s.OutputDir
	}

	reports, err := status.ListReports(*dir)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}
	if len(reports) == 0 {
		fmt.Fprintln(std.out, "No saved reports found.")
		fmt.Fprintln(std.out, "Run 'brief' and answer y to save one.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(std.out, "  %-40s %-8s %8d  %s\n",
			r.Topic, r.Format, r.Size, r.ModTime.Format("2006-01-02 15:04"))
		fmt.Fprintf(std.out, "    %s\n", r.Path)
	}
	return nil
}
