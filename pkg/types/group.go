package types

// MatchedFolder is a directory entry claimed by a pattern during a scan.
// It is derived state, recomputed per scan; there is no persisted identity.
type MatchedFolder struct {
	// Path is the absolute path of the folder
	Path string

	// Name is the folder's leaf name, original case preserved
	Name string

	// BaseName is the trimmed first capture group of the matching pattern
	BaseName string

	// MatchedBy is the name of the pattern that claimed this folder
	MatchedBy string

	// SortKey holds the integers parsed from the pattern's remaining
	// capture groups, compared lexicographically
	SortKey []int

	// ListIndex is the folder's position in the original directory
	// listing, used as the stable tie-break
	ListIndex int
}

// CompareSortKeys compares two numeric sort keys lexicographically.
// A shorter key that is a prefix of the other sorts first.
func CompareSortKeys(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Group is a set of sibling folders recognized as segments of one logical
// folder. All members share BaseName and were claimed by the same pattern.
type Group struct {
	// BaseName is the logical name shared by all members
	BaseName string

	// Pattern is the name of the pattern that matched every member
	Pattern string

	// Members holds all segments, ordered by sort key then listing order
	Members []MatchedFolder

	// Target is the member that receives the other members' contents
	Target MatchedFolder
}
