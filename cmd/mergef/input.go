package mergef

import (
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/arthur-debert/mergef/pkg/errors"
	"github.com/arthur-debert/mergef/pkg/logging"
)

// readClipboardPaths reads newline-separated directory paths from the
// system clipboard. Surrounding quotes (as produced by "copy as path" on
// some platforms) are stripped and the paths are cleaned; existence is
// the caller's concern.
func readClipboardPaths() ([]string, error) {
	logger := logging.GetLogger("cli.input")

	content, err := clipboard.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrClipboardRead, "cannot read clipboard")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.New(errors.ErrClipboardRead, "clipboard is empty")
	}

	var paths []string
	for _, line := range strings.Split(content, "\n") {
		p := strings.TrimSpace(line)
		p = strings.Trim(p, `"`)
		if p == "" {
			continue
		}
		paths = append(paths, filepath.Clean(p))
	}

	logger.Debug().Int("paths", len(paths)).Msg("read paths from clipboard")
	return paths, nil
}
