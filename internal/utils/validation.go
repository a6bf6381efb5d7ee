package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/aelpxy/atlassnap/internal/constants"
	"github.com/pkg/errors"
)

// ValidateInputFile resolves path and checks it names a regular file.
func ValidateInputFile(path string) (string, error) {
	if path == "" {
		return "", errors.New("path cannot be empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve path")
	}

	cleanPath := filepath.Clean(absPath)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Errorf("file does not exist: %s", cleanPath)
		}
		return "", errors.Wrap(err, "failed to access path")
	}

	if !info.Mode().IsRegular() {
		return "", errors.Errorf("not a regular file: %s", cleanPath)
	}

	if info.Size() > constants.MaxPayloadBytes {
		return "", errors.Errorf("file too large: %s", cleanPath)
	}

	return cleanPath, nil
}

// ReadInput reads the named file, or stdin when path is empty or "-".
func ReadInput(path string, stdin io.Reader) ([]byte, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(io.LimitReader(stdin, constants.MaxPayloadBytes+1))
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to read stdin")
		}
		if len(data) > constants.MaxPayloadBytes {
			return nil, "", errors.New("stdin payload too large")
		}
		return data, "stdin", nil
	}

	cleanPath, err := ValidateInputFile(path)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read input")
	}
	return data, cleanPath, nil
}
