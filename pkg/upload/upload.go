// Package upload validates and stores multipart image uploads. Storage is a
// plain directory on disk; serving the files is left to the front-end stack.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("uploaded file exceeds the size limit")
	ErrUnsupportedType = errors.New("uploaded file must be a JPEG, PNG or WebP image")
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type ImageStore struct {
	dir     string
	maxSize int64
}

func NewImageStore(dir string, maxSize int64) *ImageStore {
	return &ImageStore{dir: dir, maxSize: maxSize}
}

// Save validates content type and size, then writes the file under a
// generated name. Returns the stored path relative to the upload dir.
func (s *ImageStore) Save(file multipart.File, header *multipart.FileHeader, subdir string) (string, error) {
	if header.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	// Sniff the real content type instead of trusting the client header.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	contentType := http.DetectContentType(head[:n])

	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	dir := filepath.Join(s.dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, s.maxSize)); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// Remove deletes a previously stored file. Missing files are not an error.
func (s *ImageStore) Remove(relPath string) error {
	if relPath == "" || strings.Contains(relPath, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload %s: %w", relPath, err)
	}
	return nil
}
