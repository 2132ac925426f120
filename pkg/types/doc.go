// Package types defines the core types used throughout mergef.
// This includes the Pattern catalog entry, MatchedFolder, Group,
// MergeOperation, Plan and Report structures, plus the FS interface
// that lets the planner and executor run against test filesystems.
package types
