package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSortKeys(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2}, []int{1, 2}, 0},
		{"numeric not lexical", []int{2, 1}, []int{10, 1}, -1},
		{"second element decides", []int{1, 1}, []int{1, 2}, -1},
		{"prefix sorts first", []int{1}, []int{1, 1}, -1},
		{"longer sorts last", []int{1, 1}, []int{1}, 1},
		{"empty keys equal", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareSortKeys(tt.a, tt.b))
		})
	}
}

func TestMergeOperationString(t *testing.T) {
	move := MergeOperation{
		Kind:     OpMoveEntry,
		Source:   "/t/Movie part2/a.txt",
		DestDir:  "/t/Movie part1",
		DestName: "a.txt",
	}
	assert.Equal(t, "move /t/Movie part2/a.txt -> /t/Movie part1/a.txt", move.String())

	renamed := move
	renamed.DestName = "a (1).txt"
	assert.Contains(t, renamed.String(), "renamed from a.txt")

	del := MergeOperation{Kind: OpDeleteEmptyDir, Path: "/t/Movie part2"}
	assert.Equal(t, "remove empty dir /t/Movie part2", del.String())

	ren := MergeOperation{Kind: OpRenameDir, Path: "/t/Movie part1", NewName: "Movie"}
	assert.Equal(t, "rename /t/Movie part1 -> /t/Movie", ren.String())
}

func TestReportOk(t *testing.T) {
	r := &Report{}
	assert.True(t, r.Ok())
	r.Failed = append(r.Failed, OperationResult{})
	assert.False(t, r.Ok())
}
