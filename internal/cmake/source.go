package cmake

import (
	"fmt"
	"os"
)

// ReadSource loads a listfile. A missing file is not an error: extraction
// proceeds on empty text and resolves to sentinel values downstream. The
// returned bool reports whether the file existed.
func ReadSource(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read listfile %s: %w", path, err)
	}
	return string(data), true, nil
}
