package io

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Copy copies src to dst, creating or truncating dst, and gives dst the permission bits of src.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return errors.Wrap(err, "stating source file")
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Chmod(fi.Mode().Perm()); err != nil {
		return errors.Wrap(err, "setting file mode")
	}
	return out.Close()
}

// ReadFile reads the whole file at path as text.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteFile replaces the contents of the existing file at path, keeping its mode.
func WriteFile(path, content string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), fi.Mode().Perm())
}
