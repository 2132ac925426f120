// Package executor runs merge plans. Execution is best-effort: a failed
// operation is recorded and the run continues, so the report always shows
// every attempted operation. There is no rollback.
package executor

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/mergef/pkg/errors"
	"github.com/arthur-debert/mergef/pkg/filesystem"
	"github.com/arthur-debert/mergef/pkg/logging"
	"github.com/arthur-debert/mergef/pkg/types"
)

// Options contains configuration for the executor
type Options struct {
	DryRun bool
	// Logger overrides the default component logger; nil keeps the default
	Logger *zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
}

// Executor consumes plans and mutates the filesystem
type Executor struct {
	dryRun bool
	logger zerolog.Logger
	fs     types.FS
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		dryRun: opts.DryRun,
		logger: logger,
		fs:     fs,
	}
}

// Execute runs a plan's operations in order and returns the report.
// In dry-run mode nothing is mutated; the report still enumerates every
// operation the real run would perform, in the same order.
//
// A failed move poisons its member: the member's delete is skipped and
// reported, since the folder still holds the entries that did not move.
// A failed target rename is reported but completed moves stay in place.
func (e *Executor) Execute(plan *types.Plan) *types.Report {
	report := &types.Report{Plan: plan, DryRun: e.dryRun}
	dirtyMembers := make(map[string]bool)

	for _, op := range plan.Operations {
		e.logger.Debug().
			Str("op", string(op.Kind)).
			Str("detail", op.String()).
			Bool("dry_run", e.dryRun).
			Msg("Executing operation")

		if e.dryRun {
			report.Succeeded = append(report.Succeeded, types.OperationResult{
				Op:      op,
				Skipped: true,
				Message: "dry run - no changes made",
			})
			continue
		}

		result := e.executeOperation(op, dirtyMembers)
		if result.Err != nil {
			e.logger.Warn().
				Err(result.Err).
				Str("op", string(op.Kind)).
				Str("detail", op.String()).
				Msg("Operation failed")
			if op.Kind == types.OpMoveEntry {
				dirtyMembers[op.Member] = true
			}
			report.Failed = append(report.Failed, result)
			continue
		}

		e.logger.Info().
			Str("op", string(op.Kind)).
			Str("detail", op.String()).
			Msg("Operation completed")
		report.Succeeded = append(report.Succeeded, result)
	}

	return report
}

func (e *Executor) executeOperation(op types.MergeOperation, dirtyMembers map[string]bool) types.OperationResult {
	switch op.Kind {
	case types.OpMoveEntry:
		return e.moveEntry(op)
	case types.OpDeleteEmptyDir:
		return e.deleteEmptyDir(op, dirtyMembers)
	case types.OpRenameDir:
		return e.renameDir(op)
	default:
		return types.OperationResult{
			Op:  op,
			Err: errors.Newf(errors.ErrInternal, "unknown operation kind %q", string(op.Kind)),
		}
	}
}

func (e *Executor) moveEntry(op types.MergeOperation) types.OperationResult {
	if err := e.fs.Rename(op.Source, op.Dest()); err != nil {
		return types.OperationResult{
			Op:  op,
			Err: errors.Wrapf(err, errors.ErrMoveFailed, "cannot move %s", op.Source),
		}
	}
	return types.OperationResult{Op: op}
}

func (e *Executor) deleteEmptyDir(op types.MergeOperation, dirtyMembers map[string]bool) types.OperationResult {
	if dirtyMembers[op.Member] {
		return types.OperationResult{
			Op:      op,
			Skipped: true,
			Err:     errors.Newf(errors.ErrDeleteFailed, "member %s has leftover entries after failed moves", op.Member),
			Message: "skipped: earlier move out of this member failed",
		}
	}

	entries, err := e.fs.ReadDir(op.Path)
	if err != nil {
		return types.OperationResult{
			Op:  op,
			Err: errors.Wrapf(err, errors.ErrDeleteFailed, "cannot list %s", op.Path),
		}
	}
	if len(entries) > 0 {
		return types.OperationResult{
			Op:  op,
			Err: errors.Newf(errors.ErrDeleteFailed, "directory %s is not empty", op.Path),
		}
	}

	if err := e.fs.Remove(op.Path); err != nil {
		return types.OperationResult{
			Op:  op,
			Err: errors.Wrapf(err, errors.ErrDeleteFailed, "cannot remove %s", op.Path),
		}
	}
	return types.OperationResult{Op: op}
}

func (e *Executor) renameDir(op types.MergeOperation) types.OperationResult {
	newPath := filepath.Join(filepath.Dir(op.Path), op.NewName)

	// An unrelated entry may have claimed the canonical name since the
	// plan was built; completed moves are not undone.
	if _, err := e.fs.Stat(newPath); err == nil {
		return types.OperationResult{
			Op:  op,
			Err: errors.Newf(errors.ErrRenameFailed, "destination %s already exists", newPath),
		}
	} else if !os.IsNotExist(err) {
		return types.OperationResult{
			Op:  op,
			Err: errors.Wrapf(err, errors.ErrRenameFailed, "cannot stat %s", newPath),
		}
	}

	if err := e.fs.Rename(op.Path, newPath); err != nil {
		return types.OperationResult{
			Op:  op,
			Err: errors.Wrapf(err, errors.ErrRenameFailed, "cannot rename %s", op.Path),
		}
	}
	return types.OperationResult{Op: op}
}
