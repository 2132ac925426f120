package types

// PatternSource identifies where a pattern came from
type PatternSource string

const (
	// SourceBuiltin marks patterns shipped with mergef; they cannot be removed
	SourceBuiltin PatternSource = "builtin"

	// SourceUser marks patterns loaded from the user's pattern store
	SourceUser PatternSource = "user"
)

// Pattern is one segmented-folder recognition rule.
//
// Base is a regular expression whose first capture group yields the base
// name shared by all segments of a group; the remaining capture groups
// provide the numeric sort key. Target is a regular expression searched
// against a member's name to identify the canonical first segment.
// Patterns are matched case-insensitively.
type Pattern struct {
	Name        string
	Base        string
	Target      string
	Description string
	Example     string
	Priority    int
	Source      PatternSource
}

// IsBuiltin reports whether the pattern ships with mergef
func (p Pattern) IsBuiltin() bool {
	return p.Source == SourceBuiltin
}
