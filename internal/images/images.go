// Package images stores base64-encoded uploads on disk and reads them back as
// data URLs.
package images

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

const defaultExt = "jpg"

var (
	ErrTooLarge = errors.New("image size exceeds limit")
	ErrInvalid  = errors.New("image is not valid base64")
)

// Store writes images below dir. Files are named "<prefix>_<id>.<ext>".
type Store struct {
	dir     string
	maxSize int64
}

func NewStore(dir string, maxSize int64) *Store {
	return &Store{dir: dir, maxSize: maxSize}
}

func (s *Store) MaxSize() int64 {
	return s.maxSize
}

// Decode validates an upload without touching the disk. A "data:...;base64,"
// prefix is accepted.
func (s *Store) Decode(encoded string) ([]byte, error) {
	if i := strings.Index(encoded, ";base64,"); strings.HasPrefix(encoded, "data:") && i >= 0 {
		encoded = encoded[i+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(data) == 0 {
		return nil, ErrInvalid
	}
	if int64(len(data)) > s.maxSize {
		return nil, ErrTooLarge
	}
	return data, nil
}

// Write stores data and returns the file path.
func (s *Store) Write(prefix string, id int64, fileName string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%d.%s", prefix, id, extension(fileName)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

// DataURL reads the file back as "data:<mime>;base64,<payload>".
func (s *Store) DataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Remove deletes the file; a missing file is not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// extension keeps only the alphanumeric part of the file name's extension.
func extension(fileName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filepath.Base(fileName)), "."))
	clean := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, ext)
	if clean == "" {
		return defaultExt
	}
	return clean
}
