package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// DirEntry is an alias for fs.DirEntry from the standard library.
type DirEntry = fs.DirEntry

// FileSystemProvider gives access to directories and files.
type FileSystemProvider interface {
	// ReadDir returns the direct children of the directory at path,
	// sorted by name. Subdirectories are listed but not descended into.
	ReadDir(path string) ([]DirEntry, error)

	// OpenFile opens the file at path for reading.
	// The caller must close the returned reader.
	OpenFile(path string) (io.ReadCloser, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
