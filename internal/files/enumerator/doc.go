// Package enumerator discovers candidate files for a search.
//
// A candidate is a direct child of the target directory that is not a
// directory and whose extension is exactly "txt". Subdirectories are never
// descended into. Candidates matching a gitignore-style exclusion pattern,
// from configuration or from a .tseaignore file in the target directory,
// are dropped.
//
// The enumerator works against filesystem.FileSystemProvider so tests can
// run it over an in-memory filesystem.
package enumerator
