package internal

import "os"

// FileExists checks if a file exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// EnsureDirs creates directories if needed
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if !FileExists(dir) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsLikelyCommand checks if a string looks like it might be a mistyped
// command rather than a video reference.
func IsLikelyCommand(arg string) bool {
	// Short strings that can't be a video ID are likely commands
	return len(arg) <= 10 && !IsValidVideoID(arg)
}
