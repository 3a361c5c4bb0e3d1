// Package upload validates resume files before the session accepts them.
package upload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize is the resume size ceiling in bytes.
const MaxFileSize = 10 * 1024 * 1024

var (
	// ErrFileType rejects anything outside the document allow-list.
	ErrFileType = errors.New("unsupported file type; upload a PDF, DOC, or DOCX")
	// ErrFileSize rejects files over MaxFileSize.
	ErrFileSize = errors.New("file is too large; the limit is 10 MB")
)

var allowedExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// File is an accepted resume handle. Nothing is read from the file; the
// interview flow only needs its identity.
type File struct {
	Name string
	Size int64
	Ext  string
}

// Validate checks a candidate file name and size against the allow-list and
// size ceiling. Type is checked before size so a bad extension wins.
func Validate(name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExts[ext] {
		return ErrFileType
	}
	if size > MaxFileSize {
		return ErrFileSize
	}
	return nil
}

// FromPath stats and validates a file on disk.
func FromPath(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	name := filepath.Base(path)
	if err := Validate(name, info.Size()); err != nil {
		return File{}, err
	}
	return File{
		Name: name,
		Size: info.Size(),
		Ext:  strings.ToLower(filepath.Ext(name)),
	}, nil
}

// AllowedExtensions lists the accepted extensions in display order.
func AllowedExtensions() []string {
	return []string{".pdf", ".doc", ".docx"}
}
