package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

// RandomToken returns n secure random bytes, URL-safe base64 encoded without padding.
func RandomToken(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid token size: %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// EnsureDir creates the directory path when it is missing.
// It fails when path exists but is not a directory.
func EnsureDir(path string) error {
	stat, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return os.MkdirAll(path, 0o750)
	case err != nil:
		return err
	case !stat.IsDir():
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
