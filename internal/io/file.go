package ioutils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNotAudio is returned when a single file path does not name an
// MP3 file.
var ErrNotAudio = errors.New("not an mp3 file")

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// IsAudioFile reports whether name has an .mp3 extension, ignoring case.
func IsAudioFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".mp3")
}

// ListAudioFiles returns the MP3 files found at path.
//
// If path is a file it is returned on its own. If it is a directory,
// it is walked recursively and every MP3 file underneath is returned.
// Results are sorted lexically so callers see a stable order.
//
// Example:
//
//	files, err := ListAudioFiles("/music/Miles Davis")
//	// [/music/Miles Davis/Kind of Blue/01.mp3 ...]
func ListAudioFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !IsAudioFile(path) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotAudio)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsAudioFile(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
