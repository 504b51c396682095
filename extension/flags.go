// flags.go defines constants for all CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "ignore-case" -> FlagIgnoreCase).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagCount      = "count"       // Output count only
	FlagDiff       = "diff"        // Show diff against the file before saving
	FlagDryRun     = "dry-run"     // Apply the edit but do not save
	FlagIgnoreCase = "ignore-case" // Case-insensitive matching
	FlagLocal      = "local"       // Use local config scope
	FlagNumber     = "number"      // Number output lines
	FlagRaw        = "raw"         // Raw output without formatting

	// String flags

	FlagLines = "lines" // Line range specification (e.g., "2:5")

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)
