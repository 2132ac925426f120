package mergef

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Merge segmented sibling folders into one"
	MsgRootLong  = `mergef detects groups of sibling folders that are parts of one logical
folder (Movie part1, Movie part2, ...), moves the other parts' contents
into the canonical target folder, removes the emptied sources and renames
the target to the shared base name.`
	MsgMergeShort    = "Scan directories and merge detected segment folders"
	MsgMergeLong     = "Merge looks at the direct subfolders of each given path, groups segment folders by their shared base name and merges each group into its target folder."
	MsgPatternsShort = "Manage folder recognition patterns"
	MsgListShort     = "List builtin and user-defined patterns"
	MsgAddShort      = "Add a user-defined pattern"
	MsgRemoveShort   = "Remove a user-defined pattern"
	MsgVersionShort  = "Print version information"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview the operations without executing them"
	MsgFlagPattern   = "Restrict matching to a single named pattern"
	MsgFlagClipboard = "Read directory paths from the clipboard, one per line"
	MsgFlagDesc      = "Human-readable description of the pattern"
	MsgFlagExample   = "Example folder names the pattern matches"

	// Status messages
	MsgPatternAdded   = "Added pattern %q\n"
	MsgPatternRemoved = "Removed pattern %q\n"
	MsgNoPaths        = "no directory paths given (pass arguments or use --clipboard)"
	MsgSkippedPath    = "skipping path that does not exist: %s\n"
)
