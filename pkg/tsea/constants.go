package tsea

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Search completed, with or without matches
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration file or flag value
	ExitDirectoryError = 11 // Target directory could not be read
)

const (
	// CandidateExtension is the extension (without the dot) a file must carry
	// to be scanned. The comparison is case-sensitive.
	CandidateExtension = "txt"

	// DefaultDirectory is the target directory used when none is given.
	DefaultDirectory = "."

	// IgnoreFileName is the optional file inside the target directory holding
	// gitignore-style patterns for candidates to skip.
	IgnoreFileName = ".tseaignore"
)
