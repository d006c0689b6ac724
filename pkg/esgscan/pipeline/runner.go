// Package pipeline orchestrates the three analysis stages as independent
// processes: text extraction, data extraction, and quantitative analysis.
// A failing stage is recorded and the pipeline continues, so a partial
// run still produces whatever outputs its surviving stages can.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/disclosurelab/esgscan/internal/console"
)

// Stage is one pipeline step, run as a child process.
type Stage struct {
	Description string
	Command     string
	Args        []string
}

// StageResult records one stage's outcome.
type StageResult struct {
	Description string
	OK          bool
	Output      string
	Err         error
	Duration    time.Duration
}

// Runner executes a fixed sequence of stages.
type Runner struct {
	Stages []Stage

	now func() time.Time // swappable for tests
}

// NewRunner returns a runner over the given stages.
func NewRunner(stages []Stage) *Runner {
	return &Runner{Stages: stages, now: time.Now}
}

// RunAll executes every stage in order, continuing past failures. The
// results slice always has one entry per stage.
func (r *Runner) RunAll(ctx context.Context) []StageResult {
	results := make([]StageResult, 0, len(r.Stages))
	for _, stage := range r.Stages {
		console.Banner("STEP: " + stage.Description)
		console.Printf("Running: %s\n", stage.Command)

		start := r.now()
		cmd := exec.CommandContext(ctx, stage.Command, stage.Args...)
		out, err := cmd.CombinedOutput()
		res := StageResult{
			Description: stage.Description,
			OK:          err == nil,
			Output:      string(out),
			Err:         err,
			Duration:    r.now().Sub(start),
		}
		results = append(results, res)

		if len(res.Output) > 0 {
			console.Printf("%s", res.Output)
		}
		if res.OK {
			console.OK("%s completed successfully", stage.Description)
		} else {
			console.Fail("%s failed: %v", stage.Description, err)
			console.Warn("%s failed. Continuing with next step...", stage.Description)
		}
	}
	return results
}

// CheckInput verifies the pipeline prerequisite: the input directory
// exists and holds at least one PDF.
func CheckInput(dir string) error {
	console.Banner("CHECKING PREREQUISITES")

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		console.Fail("ERROR: %q directory not found", dir)
		return fmt.Errorf("input directory %q not found", dir)
	}

	count := 0
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".pdf") {
			count++
		}
		return nil
	})
	if err != nil {
		return err
	}

	console.OK("Found %d PDF files in %s/", count, dir)
	if count == 0 {
		console.Fail("ERROR: No PDF files found to analyze")
		return fmt.Errorf("no PDF files under %q", dir)
	}
	return nil
}
