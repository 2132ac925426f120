// Package matcher applies the pattern catalog to the folder names of one
// scanned directory.
package matcher

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/mergef/pkg/logging"
	"github.com/arthur-debert/mergef/pkg/patterns"
	"github.com/arthur-debert/mergef/pkg/types"
)

// Match tries every catalog pattern against each folder name, in priority
// order; the first pattern whose base expression matches claims the
// folder. Folder names matching no pattern are skipped, not an error.
//
// names must be in original directory listing order: the index becomes
// the stable tie-break when sort keys are equal.
func Match(dir string, names []string, cat *patterns.Catalog) []types.MatchedFolder {
	logger := logging.GetLogger("matcher")

	var matched []types.MatchedFolder
	for idx, name := range names {
		m, ok := matchOne(dir, name, idx, cat)
		if !ok {
			logger.Debug().Str("folder", name).Msg("no pattern matched")
			continue
		}
		logger.Debug().
			Str("folder", name).
			Str("pattern", m.MatchedBy).
			Str("base", m.BaseName).
			Ints("sortKey", m.SortKey).
			Msg("folder matched")
		matched = append(matched, m)
	}
	return matched
}

func matchOne(dir, name string, idx int, cat *patterns.Catalog) (types.MatchedFolder, bool) {
	for _, p := range cat.Entries() {
		groups, ok := p.MatchBase(name)
		if !ok {
			continue
		}
		return types.MatchedFolder{
			Path:      filepath.Join(dir, name),
			Name:      name,
			BaseName:  strings.TrimSpace(groups[0]),
			MatchedBy: p.Name,
			SortKey:   sortKey(groups[1:]),
			ListIndex: idx,
		}, true
	}
	return types.MatchedFolder{}, false
}

// sortKey parses the remaining capture groups into an integer tuple.
// A group that is not a number (possible with user patterns) counts as 0.
func sortKey(groups []string) []int {
	key := make([]int, 0, len(groups))
	for _, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil {
			n = 0
		}
		key = append(key, n)
	}
	return key
}
