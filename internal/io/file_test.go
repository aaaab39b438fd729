package ioutils

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"track.mp3", true},
		{"TRACK.MP3", true},
		{"cover.jpg", false},
		{"mp3", false},
		{"notes.mp3.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAudioFile(tt.name); got != tt.want {
				t.Errorf("IsAudioFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestListAudioFiles_Directory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b", "02.mp3"))
	touch(t, filepath.Join(root, "a", "01.MP3"))
	touch(t, filepath.Join(root, "a", "cover.jpg"))
	touch(t, filepath.Join(root, "top.mp3"))

	got, err := ListAudioFiles(root)
	if err != nil {
		t.Fatalf("ListAudioFiles() unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(root, "a", "01.MP3"),
		filepath.Join(root, "b", "02.mp3"),
		filepath.Join(root, "top.mp3"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("ListAudioFiles() = %v, want %v", got, want)
	}
}

func TestListAudioFiles_SingleFile(t *testing.T) {
	root := t.TempDir()
	mp3 := filepath.Join(root, "one.mp3")
	txt := filepath.Join(root, "one.txt")
	touch(t, mp3)
	touch(t, txt)

	got, err := ListAudioFiles(mp3)
	if err != nil || len(got) != 1 || got[0] != mp3 {
		t.Errorf("ListAudioFiles(mp3) = %v, %v", got, err)
	}

	if _, err := ListAudioFiles(txt); !errors.Is(err, ErrNotAudio) {
		t.Errorf("ListAudioFiles(txt) error = %v, want ErrNotAudio", err)
	}
}

func TestListAudioFiles_Missing(t *testing.T) {
	_, err := ListAudioFiles(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
