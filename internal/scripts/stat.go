package scripts

import "os"

func stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// isExecutable reports whether info's permission bits grant execute to
// owner, group, or other. This is a best-effort check (the authoritative
// answer comes from exec.CommandContext failing at spawn time), sufficient
// to reject obviously non-executable files before invoking them.
func isExecutable(info os.FileInfo) bool {
	return info.Mode()&0o111 != 0
}
