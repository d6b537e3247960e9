// Package mode defines the closed set of editing modes. Exactly one mode is
// active at a time; it determines how key events are interpreted.
package mode

// Mode is an editing mode.
type Mode uint8

const (
	// Normal is the hub mode all other modes return to on cancel.
	Normal Mode = iota
	// Insert accepts printable characters into the buffer.
	Insert
	// Visual tracks an anchor-to-cursor selection.
	Visual
	// Command edits and executes a ":" command line.
	Command
	// Search edits and runs a "/" search pattern.
	Search
	// FileExplorer browses the filesystem.
	FileExplorer
)

// String returns the mode's identifier.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Visual:
		return "visual"
	case Command:
		return "command"
	case Search:
		return "search"
	case FileExplorer:
		return "file-explorer"
	default:
		return "unknown"
	}
}

// DisplayName returns the name shown in the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case Command:
		return "COMMAND"
	case Search:
		return "SEARCH"
	case FileExplorer:
		return "FILE_EXPLORER"
	default:
		return "UNKNOWN"
	}
}
