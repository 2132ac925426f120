// Package core wires the pipeline together: scan one directory, match
// folder names against the catalog, build groups, plan each group's merge
// and optionally execute the plans.
package core

import (
	"os"

	"github.com/arthur-debert/mergef/pkg/errors"
	"github.com/arthur-debert/mergef/pkg/executor"
	"github.com/arthur-debert/mergef/pkg/groups"
	"github.com/arthur-debert/mergef/pkg/logging"
	"github.com/arthur-debert/mergef/pkg/matcher"
	"github.com/arthur-debert/mergef/pkg/patterns"
	"github.com/arthur-debert/mergef/pkg/planner"
	"github.com/arthur-debert/mergef/pkg/types"
)

// Outcome classifies a run for the CLI's exit code
type Outcome string

const (
	// OutcomeNoGroups means no segment groups were detected; informational,
	// not an error
	OutcomeNoGroups Outcome = "no_groups"

	// OutcomeMerged means every planned operation succeeded
	OutcomeMerged Outcome = "merged"

	// OutcomePartial means some operations or group plans failed
	OutcomePartial Outcome = "partial"
)

// GroupError records a group whose plan could not be built. Such failures
// are fatal for that group only; other groups still run.
type GroupError struct {
	BaseName string
	Err      error
}

// ScanResult is the side-effect-free product of scanning one directory
type ScanResult struct {
	Dir         string
	Plans       []*types.Plan
	GroupErrors []GroupError
}

// RunResult is a ScanResult plus the per-plan execution reports
type RunResult struct {
	ScanResult
	Reports []*types.Report
	DryRun  bool
}

// Outcome classifies the run
func (r *RunResult) Outcome() Outcome {
	if len(r.Plans) == 0 && len(r.GroupErrors) == 0 {
		return OutcomeNoGroups
	}
	if len(r.GroupErrors) > 0 {
		return OutcomePartial
	}
	for _, report := range r.Reports {
		if !report.Ok() {
			return OutcomePartial
		}
	}
	return OutcomeMerged
}

// Scan validates the directory, matches its direct subfolders against the
// catalog and returns one plan per viable group, sorted by base name.
// Nothing is mutated. An invalid path is a hard failure; a group whose
// plan cannot be built (say, an unreadable member) is recorded and skipped.
func Scan(dir string, cat *patterns.Catalog, fsys types.FS) (*ScanResult, error) {
	logger := logging.GetLogger("core")

	info, err := fsys.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrPathNotFound, "path %s does not exist", dir)
		}
		return nil, errors.Wrapf(err, errors.ErrPathNotFound, "cannot access %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "%s is not a directory", dir)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanFailed, "cannot list %s", dir)
	}

	// Only direct child directories are segment candidates
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	matches := matcher.Match(dir, names, cat)
	result := &ScanResult{Dir: dir}
	for _, group := range groups.Build(matches, cat) {
		plan, err := planner.Build(group, fsys)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("base", group.BaseName).
				Msg("skipping group: plan could not be built")
			result.GroupErrors = append(result.GroupErrors, GroupError{BaseName: group.BaseName, Err: err})
			continue
		}
		result.Plans = append(result.Plans, plan)
	}

	logger.Info().
		Str("dir", dir).
		Int("folders", len(names)).
		Int("groups", len(result.Plans)).
		Msg("scan complete")
	return result, nil
}

// Merge scans a directory and executes (or, in dry-run mode, previews)
// every plan. Groups run sequentially in base-name order; they share no
// state, so one group's failures never abort another group.
//
// Re-running Merge over an already-merged tree finds no groups and
// mutates nothing.
func Merge(dir string, cat *patterns.Catalog, fsys types.FS, dryRun bool) (*RunResult, error) {
	scan, err := Scan(dir, cat, fsys)
	if err != nil {
		return nil, err
	}

	run := &RunResult{ScanResult: *scan, DryRun: dryRun}
	exec := executor.New(executor.Options{
		DryRun: dryRun,
		FS:     fsys,
	})
	for _, plan := range scan.Plans {
		run.Reports = append(run.Reports, exec.Execute(plan))
	}
	return run, nil
}
