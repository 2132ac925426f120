// Package planner computes the ordered operation list that merges one
// group, without mutating anything. Plans are the preview output: a dry
// run renders a plan, a real run executes it.
package planner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mergef/pkg/errors"
	"github.com/arthur-debert/mergef/pkg/logging"
	"github.com/arthur-debert/mergef/pkg/types"
)

// Build computes the plan for a group. The only I/O is read-only listing
// of the member folders, needed to detect name collisions in advance.
//
// Operation order: for each non-target member (in member order) all of its
// entry moves, then the member's delete; the target rename, when needed,
// comes last.
func Build(group types.Group, fsys types.FS) (*types.Plan, error) {
	logger := logging.GetLogger("planner")

	plan := &types.Plan{
		Group:     group,
		Conflicts: make(map[string]string),
	}

	// Names already taken in the target, and which of them are real
	// directories eligible for a one-level merge-by-name.
	occupied, existingDirs, err := listNames(fsys, group.Target.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanFailed, "cannot list target %s", group.Target.Path)
	}

	// Occupied-name sets for merged subdirectories, shared across members
	// so a name planned into a subdirectory by an earlier member collides
	// for later members too.
	subOccupied := make(map[string]map[string]bool)

	for _, member := range group.Members {
		if member.Path == group.Target.Path {
			continue
		}

		entries, err := fsys.ReadDir(member.Path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrScanFailed, "cannot list member %s", member.Path)
		}

		for _, entry := range entries {
			src := filepath.Join(member.Path, entry.Name())

			if entry.IsDir() && existingDirs[entry.Name()] {
				// Same-named directory already in the target: merge its
				// direct children instead of suffixing the whole folder.
				dest := filepath.Join(group.Target.Path, entry.Name())
				if err := mergeDirInto(plan, fsys, src, dest, member.Path, subOccupied); err != nil {
					return nil, err
				}
				continue
			}

			destName := resolveName(entry.Name(), occupied)
			occupied[destName] = true
			if destName != entry.Name() {
				plan.Conflicts[src] = destName
				logger.Debug().
					Str("entry", entry.Name()).
					Str("resolved", destName).
					Msg("name collision resolved")
			}
			plan.Operations = append(plan.Operations, types.MergeOperation{
				Kind:     types.OpMoveEntry,
				Source:   src,
				DestDir:  group.Target.Path,
				DestName: destName,
				Member:   member.Path,
			})
		}

		plan.Operations = append(plan.Operations, types.MergeOperation{
			Kind:   types.OpDeleteEmptyDir,
			Path:   member.Path,
			Member: member.Path,
		})
	}

	if filepath.Base(group.Target.Path) != group.BaseName {
		plan.Operations = append(plan.Operations, types.MergeOperation{
			Kind:    types.OpRenameDir,
			Path:    group.Target.Path,
			NewName: group.BaseName,
			Member:  group.Target.Path,
		})
	}

	logger.Debug().
		Str("base", group.BaseName).
		Int("operations", len(plan.Operations)).
		Int("conflicts", len(plan.Conflicts)).
		Msg("plan built")
	return plan, nil
}

// mergeDirInto plans the one-level merge of src's direct children into the
// existing directory dest. Collisions inside dest are resolved with the
// same suffix rule; dest's occupied-name set lives in subOccupied and is
// seeded from disk once, then shared across members. Same-named
// subdirectories one level down are suffixed, not merged recursively.
func mergeDirInto(plan *types.Plan, fsys types.FS, src, dest, member string, subOccupied map[string]map[string]bool) error {
	occupied, seeded := subOccupied[dest]
	if !seeded {
		var err error
		occupied, _, err = listNames(fsys, dest)
		if err != nil {
			return errors.Wrapf(err, errors.ErrScanFailed, "cannot list directory %s", dest)
		}
		subOccupied[dest] = occupied
	}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrScanFailed, "cannot list directory %s", src)
	}

	for _, entry := range entries {
		entrySrc := filepath.Join(src, entry.Name())
		destName := resolveName(entry.Name(), occupied)
		occupied[destName] = true
		if destName != entry.Name() {
			plan.Conflicts[entrySrc] = destName
		}
		plan.Operations = append(plan.Operations, types.MergeOperation{
			Kind:     types.OpMoveEntry,
			Source:   entrySrc,
			DestDir:  dest,
			DestName: destName,
			Member:   member,
		})
	}

	plan.Operations = append(plan.Operations, types.MergeOperation{
		Kind:   types.OpDeleteEmptyDir,
		Path:   src,
		Member: member,
	})
	return nil
}

// listNames returns the occupied name set of a directory and the subset
// of names that are directories.
func listNames(fsys types.FS, dir string) (map[string]bool, map[string]bool, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]bool, len(entries))
	dirs := make(map[string]bool)
	for _, e := range entries {
		names[e.Name()] = true
		if e.IsDir() {
			dirs[e.Name()] = true
		}
	}
	return names, dirs, nil
}

// resolveName returns name unchanged when it is free, otherwise the first
// unused "name (N)" with the suffix inserted before the extension.
func resolveName(name string, occupied map[string]bool) string {
	if !occupied[name] {
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if !occupied[candidate] {
			return candidate
		}
	}
}
