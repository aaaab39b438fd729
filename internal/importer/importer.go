package importer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ioutils "github.com/TerminTURK/AlbumCollectionManager/internal/io"
	"github.com/TerminTURK/AlbumCollectionManager/internal/model"
	"golang.org/x/sync/errgroup"
)

// ErrNoAudioFiles is returned when a scanned path holds no MP3 files.
var ErrNoAudioFiles = errors.New("no mp3 files found")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a scan progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// AlbumReader reads the album a single audio file belongs to.
// *audio.TagReader satisfies it.
type AlbumReader interface {
	ReadAlbum(path string, born model.Date) (*model.Album, error)
}

// Importer reads albums from tagged audio files.
type Importer struct {
	reader      AlbumReader
	concurrency int

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// New creates a new Importer. Concurrency below 1 is treated as 1.
// onProgress may be nil.
func New(reader AlbumReader, concurrency int, onProgress func(ProgressEvent)) *Importer {
	return &Importer{
		reader:      reader,
		concurrency: max(concurrency, 1),
		onProgress:  onProgress,
	}
}

// Skipped names a file that did not yield an album.
type Skipped struct {
	Path   string
	Reason string
}

// Report is the outcome of a scan. Albums and Skipped are both in file
// path order.
type Report struct {
	Files   int
	Albums  []*model.Album
	Skipped []Skipped
}

// Scan reads every MP3 file at path (a file or a directory tree) and
// reports the albums found.
//
// Files are read in parallel. A file that cannot be read, or whose
// album has an invalid release date, is listed in Report.Skipped; it
// does not fail the scan. Tracks of the same album each yield an album
// value, so Report.Albums may hold duplicates that the collection
// rejects on add.
func (im *Importer) Scan(ctx context.Context, path string, born model.Date) (*Report, error) {
	files, err := ioutils.ListAudioFiles(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoAudioFiles)
	}

	im.progress(ProgressEvent{Message: fmt.Sprintf("Scanning %d files in %s", len(files), path), Level: LevelInfo})

	// Workers write only their own index.
	albums := make([]*model.Album, len(files))
	reasons := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.concurrency)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			im.progress(ProgressEvent{Message: fmt.Sprintf("Reading %s", file), Level: LevelVerbose})

			album, err := im.reader.ReadAlbum(file, born)
			switch {
			case err != nil:
				reasons[i] = err.Error()
			case !album.Released.IsValid():
				reasons[i] = fmt.Sprintf("release date %s is invalid", album.Released)
			default:
				albums[i] = album
				return nil
			}

			im.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %s", file, reasons[i]), Level: LevelWarning})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		im.progress(ProgressEvent{Message: fmt.Sprintf("Scan of %s stopped: %v", path, err), Level: LevelError})
		return nil, err
	}

	report := &Report{Files: len(files)}
	for i, file := range files {
		if albums[i] != nil {
			report.Albums = append(report.Albums, albums[i])
		} else {
			report.Skipped = append(report.Skipped, Skipped{Path: file, Reason: reasons[i]})
		}
	}

	im.progress(ProgressEvent{
		Message: fmt.Sprintf("Read %d of %d files (%d skipped)", len(report.Albums), len(files), len(report.Skipped)),
		Level:   LevelSuccess,
	})

	return report, nil
}

func (im *Importer) progress(event ProgressEvent) {
	if im.onProgress == nil {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.onProgress(event)
}
