package auth

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

// ErrFileTooLarge is returned when the authorization file exceeds the size limit.
var ErrFileTooLarge = errors.New("authorization file too large")

// ReadFile reads the whole file, at most maxSize bytes. Invalid UTF-8 bytes
// are dropped.
func ReadFile(path string, maxSize int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := ioutil.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return "", err
	}

	if int64(len(b)) > maxSize {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, path, maxSize)
	}

	return strings.ToValidUTF8(string(b), ""), nil
}

// NormalizeFile reads path and normalizes its content.
func NormalizeFile(path string, maxSize int64) (Payload, error) {
	raw, err := ReadFile(path, maxSize)
	if err != nil {
		return nil, err
	}

	return Normalize(raw)
}
