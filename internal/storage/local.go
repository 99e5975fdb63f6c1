// Package storage writes uploaded game artwork to the local
// filesystem.  The original deployment pushed images to a hosted CDN;
// locally stored files behind the same handler contract keep the API
// shape identical while removing the external dependency.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowed image extensions, lower case with dot.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// LocalStore saves files under a base directory and renders public
// URLs for them.  Stored names are random so uploads can never
// collide or traverse outside the base directory.
type LocalStore struct {
	baseDir string
	baseURL string
}

// NewLocalStore creates the base directory when missing.  baseURL is
// prefixed to returned paths, e.g. "https://tickets.example.com";
// when empty, URLs are server-relative ("/uploads/<name>").
func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Dir returns the directory files are written to, for static serving.
func (s *LocalStore) Dir() string { return s.baseDir }

// IsImage reports whether the original filename carries a supported
// image extension.
func IsImage(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// SaveImage streams one multipart file to disk under a fresh uuid
// name, keeping only the original extension, and returns the public
// URL of the stored file.
func (s *LocalStore) SaveImage(fh *multipart.FileHeader) (string, error) {
	if !IsImage(fh.Filename) {
		return "", fmt.Errorf("unsupported image type: %s", filepath.Ext(fh.Filename))
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return s.baseURL + "/uploads/" + name, nil
}
