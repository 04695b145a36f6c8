package download

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateOutputDir resolves dir to an absolute, symlink-free path and checks
// that it is an existing directory.
func ValidateOutputDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidOutputDir, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidOutputDir, dir)
	}
	info, err := os.Stat(real)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrInvalidOutputDir, dir)
	}
	return real, nil
}
