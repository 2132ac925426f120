package matcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mergef/pkg/patterns"
	"github.com/arthur-debert/mergef/pkg/types"
)

func TestMatchExtractsBaseAndSortKey(t *testing.T) {
	cat := patterns.NewCatalog(nil)

	tests := []struct {
		folder   string
		wantBase string
		wantBy   string
		wantKey  []int
	}{
		{"Movie part1", "Movie", "classic_part", []int{1}},
		{"Movie part 12", "Movie", "classic_part", []int{12}},
		{"Movie p3", "Movie", "classic_part", []int{3}},
		{"Series part2-4", "Series", "part_span", []int{2, 4}},
		{"Album cd2", "Album", "disc_format", []int{2}},
		{"Book vol10", "Book", "volume_format", []int{10}},
		{"Shots-3-7", "Shots", "dash_numeric", []int{3, 7}},
		{"Archive 4", "Archive", "simple_numeric", []int{4}},
		{"Boxed[part2]", "Boxed", "bracketed_part", []int{2}},
		{"Scans.part5", "Scans", "dot_part", []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			got := Match("/base", []string{tt.folder}, cat)
			require.Len(t, got, 1)
			m := got[0]
			assert.Equal(t, tt.wantBase, m.BaseName)
			assert.Equal(t, tt.wantBy, m.MatchedBy)
			assert.Equal(t, tt.wantKey, m.SortKey)
			assert.Equal(t, tt.folder, m.Name)
			assert.Equal(t, filepath.Join("/base", tt.folder), m.Path)
		})
	}
}

func TestMatchSkipsUnmatchedNames(t *testing.T) {
	cat := patterns.NewCatalog(nil)

	got := Match("/base", []string{"Plain Folder", "Movie part1", "Another"}, cat)
	require.Len(t, got, 1)
	assert.Equal(t, "Movie part1", got[0].Name)
	// index reflects the original listing position, not the output position
	assert.Equal(t, 1, got[0].ListIndex)
}

func TestMatchIsCaseInsensitiveButPreservesCase(t *testing.T) {
	cat := patterns.NewCatalog(nil)

	got := Match("/base", []string{"MOVIE PART1", "Movie Part2"}, cat)
	require.Len(t, got, 2)
	assert.Equal(t, "MOVIE", got[0].BaseName)
	assert.Equal(t, "classic_part", got[0].MatchedBy)
	assert.Equal(t, "Movie", got[1].BaseName)
}

func TestMatchFirstPatternWins(t *testing.T) {
	cat := patterns.NewCatalog(nil)

	// "Movie part2" also satisfies simple_numeric, but classic_part has
	// higher priority and claims it exclusively
	got := Match("/base", []string{"Movie part2"}, cat)
	require.Len(t, got, 1)
	assert.Equal(t, "classic_part", got[0].MatchedBy)
	assert.Equal(t, "Movie", got[0].BaseName)
}

func TestMatchWithFilteredCatalog(t *testing.T) {
	cat := patterns.NewCatalog(nil)
	onlyDisc, err := cat.Filter("disc_format")
	require.NoError(t, err)

	got := Match("/base", []string{"Movie part1", "Album cd1"}, onlyDisc)
	require.Len(t, got, 1)
	assert.Equal(t, "Album cd1", got[0].Name)
}

func TestSortKeyNonNumericGroupCountsAsZero(t *testing.T) {
	cat := patterns.NewCatalog([]types.Pattern{
		{Name: "lettered", Base: `^(.+?) ([a-z])(\d+)$`, Target: ` a1$`, Priority: 1},
	})

	got := Match("/base", []string{"Movie b2"}, cat)
	require.Len(t, got, 1)
	require.Equal(t, "lettered", got[0].MatchedBy)
	assert.Equal(t, []int{0, 2}, got[0].SortKey)
}
