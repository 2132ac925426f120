package mergef

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/mergef/pkg/config"
	"github.com/arthur-debert/mergef/pkg/core"
	"github.com/arthur-debert/mergef/pkg/filesystem"
	"github.com/arthur-debert/mergef/pkg/logging"
	"github.com/arthur-debert/mergef/pkg/patterns"
	"github.com/arthur-debert/mergef/pkg/style"
)

func newMergeCmd(dryRun *bool) *cobra.Command {
	var (
		patternName  string
		useClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "merge [paths...]",
		Short: MsgMergeShort,
		Long:  MsgMergeLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args, patternName, useClipboard, *dryRun)
		},
	}

	cmd.Flags().StringVarP(&patternName, "pattern", "p", "", MsgFlagPattern)
	cmd.Flags().BoolVarP(&useClipboard, "clipboard", "c", false, MsgFlagClipboard)

	return cmd
}

func runMerge(cmd *cobra.Command, args []string, patternName string, useClipboard, dryRun bool) error {
	logger := logging.GetLogger("cli.merge")

	cat, err := loadCatalog()
	if err != nil {
		return &exitError{code: ExitHard, err: err}
	}
	if patternName != "" {
		cat, err = cat.Filter(patternName)
		if err != nil {
			return &exitError{code: ExitHard, err: err}
		}
	}

	paths, err := collectPaths(cmd, args, useClipboard)
	if err != nil {
		return &exitError{code: ExitHard, err: err}
	}

	renderer := style.NewRenderer()
	fsys := filesystem.NewOS()
	exit := ExitOK

	for _, dir := range paths {
		logger.Info().Str("dir", dir).Bool("dryRun", dryRun).Msg("processing directory")
		run, err := core.Merge(dir, cat, fsys, dryRun)
		if err != nil {
			return &exitError{code: ExitHard, err: err}
		}

		cmd.Printf("%s\n", dir)
		cmd.Print(renderer.RenderRun(run))
		if run.Outcome() == core.OutcomePartial {
			exit = ExitPartial
		}
	}

	if exit != ExitOK {
		return &exitError{code: exit, err: errors.New("some operations failed")}
	}
	return nil
}

// loadCatalog builds the invocation's catalog: builtins plus the user's
// stored patterns.
func loadCatalog() (*patterns.Catalog, error) {
	store := config.NewStore()
	user, err := store.Load()
	if err != nil {
		return nil, err
	}
	return patterns.NewCatalog(user), nil
}

// collectPaths gathers the directories to process from the arguments and,
// when asked, the clipboard. Nonexistent paths from the clipboard are
// skipped with a warning; an empty final set is an error.
func collectPaths(cmd *cobra.Command, args []string, useClipboard bool) ([]string, error) {
	var paths []string
	for _, arg := range args {
		paths = append(paths, filepath.Clean(arg))
	}

	if useClipboard {
		clipPaths, err := readClipboardPaths()
		if err != nil {
			return nil, err
		}
		for _, p := range clipPaths {
			if _, err := os.Stat(p); err != nil {
				cmd.PrintErrf(MsgSkippedPath, p)
				continue
			}
			paths = append(paths, p)
		}
	}

	if len(paths) == 0 {
		return nil, errors.New(MsgNoPaths)
	}
	return paths, nil
}
