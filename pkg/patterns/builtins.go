package patterns

import "github.com/arthur-debert/mergef/pkg/types"

// Builtin priorities. Lower value wins: a folder name matching several
// builtins is claimed by the lowest-numbered one only. The more specific
// bracket/dot forms come before the classic part form so that
// "Movie.part1" keeps its dot family and a clean base name.
const (
	PriorityBracketed     = 10
	PriorityParenthesized = 20
	PriorityDotPart       = 30
	PriorityPartSpan      = 40
	PriorityClassicPart   = 50
	PriorityDisc          = 60
	PriorityVolume        = 70
	PriorityDashNumeric   = 80
	PrioritySimpleNumeric = 90
)

// builtinTable is the fixed set of recognition rules shipped with mergef,
// in display order.
var builtinTable = []types.Pattern{
	{
		Name:        "bracketed_part",
		Base:        `^(.+?)\[(?:part|p)[-_ ]*(\d+)\]$`,
		Target:      `\[(?:part|p)[-_ ]*1\]$`,
		Description: "Bracketed format: name[part1], name[part2]",
		Example:     "Movie[part1], Movie[part2]",
		Priority:    PriorityBracketed,
		Source:      types.SourceBuiltin,
	},
	{
		Name:        "parentheses_part",
		Base:        `^(.+?)\((?:part|p)[-_ ]*(\d+)\)$`,
		Target:      `\((?:part|p)[-_ ]*1\)$`,
		Description: "Parenthesized format: name(part1), name(part2)",
		Example:     "Movie(part1), Movie(part2)",
		Priority:    PriorityParenthesized,
		Source:      types.SourceBuiltin,
	},
	{
		Name:        "dot_part",
		Base:        `^(.+?)\.(?:part|p)[-_ ]*(\d+)$`,
		Target:      `\.(?:part|p)[-_ ]*1$`,
		Description: "Dot-separated format: name.part1, name.part2",
		Example:     "Movie.part1, Movie.part2",
		Priority:    PriorityDotPart,
		Source:      types.SourceBuiltin,
	},
	{
		Name:        "part_span",
		Base:        `^(.+?)[-_ ]*(?:part|p)[-_ ]*(\d+)[-_](\d+)$`,
		Target:      `(?:part|p)[-_ ]*1[-_]1$`,
		Description: "Two-level part format: name part1-1, name part1-2",
		Example:     "Movie part1-1, Movie part1-2",
		Priority:    PriorityPartSpan,
		Source:      types.SourceBuiltin,
	},
	{
		Name:        "classic_part",
		Base:        `^(.+?)[-_ ]*(?:part|p)[-_ ]*(\d+)$`,
		Target:      `(?:part|p)[-_ ]*1$`,
		Description: "Classic part format: name part1, name part2",
		Example:     "Movie part1, Movie part2",
		Priority:    PriorityClassicPart,
		Source:      types.SourceBuiltin,
	},
	{
		Name:        "disc_format",
		Base:        `^(.+?)[-_ ]*(?:cd|disc)[-_ ]*(\d+)$`,
		Target:      `(?:cd|disc)[-_ ]*1$`,
		Description: "CD/disc format: name cd1, name cd2",
		Example:     "Movie cd1, Movie cd2",
		Priority:    PriorityDisc,
		Source:      types.SourceBuiltin,
	},
	{
		Name:        "volume_format",
		Base:        `^(.+?)[-_ ]*(?:vol|volume)[-_ ]*(\d+)$`,
		Target:      `(?:vol|volume)[-_ ]*1$`,
		Description: "Volume format: name vol1, name vol2",
		Example:     "Movie vol1, Movie vol2",
		Priority:    PriorityVolume,
		Source:      types.SourceBuiltin,
	},
	{
		Name:        "dash_numeric",
		Base:        `^(.+?)[-_](\d+)[-_](\d+)$`,
		Target:      `[-_]1[-_]1$`,
		Description: "Dash/underscore numeric format: name-1-1, name-1-2",
		Example:     "Movie-1-1, Movie-1-2",
		Priority:    PriorityDashNumeric,
		Source:      types.SourceBuiltin,
	},
	{
		Name:        "simple_numeric",
		Base:        `^(.+?)[-_ ]*(\d+)$`,
		Target:      `[-_ ]*1$`,
		Description: "Bare trailing number: name1, name2",
		Example:     "Movie1, Movie2",
		Priority:    PrioritySimpleNumeric,
		Source:      types.SourceBuiltin,
	},
}

// Builtins returns the builtin pattern table in display order.
// The slice is a copy; callers may not mutate the builtin set.
func Builtins() []types.Pattern {
	out := make([]types.Pattern, len(builtinTable))
	copy(out, builtinTable)
	return out
}
