package xcfix

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/aikeyboard/xcfix/internal/io"
)

const backupTimeFormat = "20060102_150405"

// BackupPath is where a backup of path taken at now is written.
func BackupPath(path string, now time.Time) string {
	return fmt.Sprintf("%s.backup_%s", path, now.Format(backupTimeFormat))
}

// Backup copies path to BackupPath(path, now) and returns the backup's location.
// An existing backup is never overwritten: a second backup within the same second
// gets a numeric suffix.
func Backup(path string, now time.Time) (string, error) {
	backupPath := BackupPath(path, now)
	for i := 1; exists(backupPath); i++ {
		backupPath = fmt.Sprintf("%s_%d", BackupPath(path, now), i)
	}
	if err := io.Copy(path, backupPath); err != nil {
		return "", errors.Wrapf(err, "backing up %s", path)
	}
	return backupPath, nil
}

// Restore copies backupPath over path.
func Restore(backupPath, path string) error {
	if err := io.Copy(backupPath, path); err != nil {
		return errors.Wrapf(err, "restoring %s from %s", path, backupPath)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
