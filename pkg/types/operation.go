package types

import (
	"fmt"
	"path/filepath"
)

// OpKind defines the type of merge operation
type OpKind string

const (
	// OpMoveEntry moves one direct child entry into a destination directory
	OpMoveEntry OpKind = "move_entry"

	// OpDeleteEmptyDir removes a directory once it has been drained
	OpDeleteEmptyDir OpKind = "delete_empty_dir"

	// OpRenameDir renames the target folder to the group's base name
	OpRenameDir OpKind = "rename_dir"
)

// MergeOperation is one step of a merge plan.
//
// For OpMoveEntry, Source is the entry being moved, DestDir the directory
// it lands in and DestName its name there (differs from the source leaf
// name only when a collision was resolved). For OpDeleteEmptyDir, Path is
// the directory to remove. For OpRenameDir, Path is the target folder and
// NewName its new leaf name. Member ties the operation to the member
// folder it drains, so the executor can skip a member's deletion after one
// of its moves failed.
type MergeOperation struct {
	Kind     OpKind
	Source   string
	DestDir  string
	DestName string
	Path     string
	NewName  string
	Member   string
}

// Dest returns the full destination path of a move operation
func (op MergeOperation) Dest() string {
	return filepath.Join(op.DestDir, op.DestName)
}

// String renders the operation in the form shown in previews and reports
func (op MergeOperation) String() string {
	switch op.Kind {
	case OpMoveEntry:
		if op.DestName != filepath.Base(op.Source) {
			return fmt.Sprintf("move %s -> %s (renamed from %s)", op.Source, op.Dest(), filepath.Base(op.Source))
		}
		return fmt.Sprintf("move %s -> %s", op.Source, op.Dest())
	case OpDeleteEmptyDir:
		return fmt.Sprintf("remove empty dir %s", op.Path)
	case OpRenameDir:
		return fmt.Sprintf("rename %s -> %s", op.Path, filepath.Join(filepath.Dir(op.Path), op.NewName))
	default:
		return fmt.Sprintf("unknown operation %q", string(op.Kind))
	}
}

// Plan is the fully computed, side-effect-free description of the
// operations a merge would perform for one group. It is immutable once
// built; execution consumes it without mutating it.
type Plan struct {
	// Group is the group this plan merges
	Group Group

	// Operations in execution order: all moves and member deletions
	// first, the target rename (if any) last
	Operations []MergeOperation

	// Conflicts maps a colliding source path to the destination name it
	// was renamed to
	Conflicts map[string]string
}

// OperationResult is the outcome of one executed (or previewed) operation
type OperationResult struct {
	Op      MergeOperation
	Err     error
	Skipped bool
	Message string
}

// Report is the outcome of executing a plan. Every operation of the plan
// appears in exactly one of Succeeded or Failed; nothing is silently
// dropped.
type Report struct {
	Plan      *Plan
	DryRun    bool
	Succeeded []OperationResult
	Failed    []OperationResult
}

// Ok reports whether every operation succeeded
func (r *Report) Ok() bool {
	return len(r.Failed) == 0
}
