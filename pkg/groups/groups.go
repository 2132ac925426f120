// Package groups clusters matched folders into merge groups and selects
// each group's canonical target.
package groups

import (
	"sort"

	"github.com/arthur-debert/mergef/pkg/logging"
	"github.com/arthur-debert/mergef/pkg/patterns"
	"github.com/arthur-debert/mergef/pkg/types"
)

// groupKey separates folders that share a literal base name but were
// claimed by different patterns; such folders are never merged together.
type groupKey struct {
	baseName string
	pattern  string
}

// Build clusters matches by (base name, pattern) and drops clusters with
// fewer than two members: a lone "part1" folder is not a segment set.
// Output is sorted by base name so groups are processed deterministically.
func Build(matches []types.MatchedFolder, cat *patterns.Catalog) []types.Group {
	logger := logging.GetLogger("groups")

	clusters := make(map[groupKey][]types.MatchedFolder)
	var order []groupKey
	for _, m := range matches {
		k := groupKey{baseName: m.BaseName, pattern: m.MatchedBy}
		if _, seen := clusters[k]; !seen {
			order = append(order, k)
		}
		clusters[k] = append(clusters[k], m)
	}

	var out []types.Group
	for _, k := range order {
		members := clusters[k]
		if len(members) < 2 {
			logger.Debug().
				Str("base", k.baseName).
				Str("pattern", k.pattern).
				Msg("dropping lone folder")
			continue
		}

		// Stable sort keeps listing order as the tie-break for equal keys
		sort.SliceStable(members, func(i, j int) bool {
			return types.CompareSortKeys(members[i].SortKey, members[j].SortKey) < 0
		})

		g := types.Group{
			BaseName: k.baseName,
			Pattern:  k.pattern,
			Members:  members,
			Target:   selectTarget(members, k.pattern, cat),
		}
		logger.Debug().
			Str("base", g.BaseName).
			Str("pattern", g.Pattern).
			Int("members", len(g.Members)).
			Str("target", g.Target.Name).
			Msg("built group")
		out = append(out, g)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BaseName < out[j].BaseName
	})
	return out
}

// selectTarget picks the member that receives the merge. The member whose
// name satisfies the pattern's target expression wins, but only when it is
// unambiguous: with zero or several candidates the fallback is the member
// with the smallest sort key (members are already sorted, first-seen on
// ties). The dual strategy covers custom patterns whose target expression
// does not discriminate cleanly.
func selectTarget(members []types.MatchedFolder, patternName string, cat *patterns.Catalog) types.MatchedFolder {
	var compiled *patterns.Compiled
	for _, e := range cat.Entries() {
		if e.Name == patternName {
			compiled = e
			break
		}
	}
	if compiled != nil {
		var candidates []types.MatchedFolder
		for _, m := range members {
			if compiled.IsTarget(m.Name) {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 1 {
			return candidates[0]
		}
	}
	return members[0]
}
