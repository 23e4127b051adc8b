package renamer

import (
	"fmt"
	"os"
)

// CheckDirectory verifies that dir exists, is a directory, and that entries
// inside it can be renamed.
func CheckDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: does not exist", dir)
		}
		return fmt.Errorf("%s: stat: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: is not a directory", dir)
	}
	return checkWritable(dir)
}
