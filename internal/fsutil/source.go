// Package fsutil reads Terraform source files from disk.
package fsutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ReadSource returns the contents of a `.tf` file.
func ReadSource(path string) (string, error) {
	if filepath.Ext(path) != ".tf" {
		return "", errors.Errorf("File specified must be .tf. Got %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", path)
	}
	if info.IsDir() {
		return "", errors.Errorf("%s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(data), nil
}
