package types

import "io/fs"

// FS abstracts the filesystem operations the scanner, planner and executor
// need, so they can run against test filesystems.
type FS interface {
	// Read operations
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Mutations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	MkdirAll(path string, perm fs.FileMode) error
}
