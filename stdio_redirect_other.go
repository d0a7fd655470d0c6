//go:build !unix

package main

import "os"

// Fallback for non-Unix platforms. Swapping the os.Stdout/os.Stderr values
// does not capture runtime-level stderr output (like panics) the way Dup2
// does, but it keeps builds working.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
