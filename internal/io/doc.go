// Package ioutils provides file system utilities.
//
// This package contains functions for:
//   - Directory creation
//   - Locating MP3 files for tag import
//
// # Finding Audio Files
//
//	// A single file
//	files, err := ioutils.ListAudioFiles("/music/blue.mp3")
//
//	// Every MP3 below a directory, sorted by path
//	files, err := ioutils.ListAudioFiles("/music")
//
// # Directories
//
//	err := ioutils.EnsureDir("/path/to/new/directory")
package ioutils
