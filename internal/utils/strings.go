package utils

import (
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

const objectIDLength = 24

func isObjectID(s string) bool {
	if len(s) != objectIDLength {
		return false
	}
	for _, r := range s {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F') {
			return false
		}
	}
	return true
}

// ShortKey renders a catalog key for a table cell. Snapshot ids are always
// shown whole; generated keys are cut to width.
func ShortKey(key string, width int) string {
	if isObjectID(key) {
		return key
	}
	return runewidth.Truncate(key, max(width, 0), "")
}

// Ellipsize fits s into width terminal cells.
func Ellipsize(s string, width int) string {
	return runewidth.Truncate(s, max(width, 3), "...")
}

func FormatBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

// AtomicWriteFile replaces filename with data. Readers see either the old
// file or the new one.
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "failed to set permissions")
	}
	if _, err = tmp.Write(data); err != nil {
		return errors.Wrap(err, "failed to write temp file")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "failed to sync temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}
	return os.Rename(tmp.Name(), filename)
}
