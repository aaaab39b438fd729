package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/TerminTURK/AlbumCollectionManager/internal/model"
)

var born = model.NewDate(1950, 1, 1)

// fakeReader derives an album from the file name: "<title>_<year>.mp3".
// A name starting with "bad" fails to read.
type fakeReader struct {
	mu    sync.Mutex
	calls int
}

func (r *fakeReader) ReadAlbum(path string, born model.Date) (*model.Album, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.HasPrefix(name, "bad") {
		return nil, errors.New("corrupt tag")
	}

	title, year, _ := strings.Cut(name, "_")
	y := 0
	for _, c := range year {
		y = y*10 + int(c-'0')
	}
	return model.NewAlbum(title, model.NewArtist("artist", born), model.GenrePop, model.NewDate(y, 1, 1)), nil
}

func writeFiles(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestImporter_ScanKeepsFileOrder(t *testing.T) {
	root := writeFiles(t, "d_2004.mp3", "a_2001.mp3", "c_2003.mp3", "b_2002.mp3", "notes.txt")
	reader := &fakeReader{}

	report, err := New(reader, 3, nil).Scan(context.Background(), root, born)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if report.Files != 4 || len(report.Skipped) != 0 {
		t.Errorf("Files = %d, Skipped = %v, want 4 and none", report.Files, report.Skipped)
	}

	var got []string
	for _, a := range report.Albums {
		got = append(got, a.Title)
	}
	if strings.Join(got, ",") != "a,b,c,d" {
		t.Errorf("titles = %v, want [a b c d]", got)
	}
	if reader.calls != 4 {
		t.Errorf("reader called %d times, want 4", reader.calls)
	}
}

func TestImporter_ScanSkipsBadFiles(t *testing.T) {
	root := writeFiles(t, "a_2001.mp3", "bad.mp3", "old_1850.mp3")

	var events []ProgressEvent
	im := New(&fakeReader{}, 2, func(e ProgressEvent) {
		events = append(events, e)
	})

	report, err := im.Scan(context.Background(), root, born)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if len(report.Albums) != 1 || report.Albums[0].Title != "a" {
		t.Fatalf("albums = %v, want only a", report.Albums)
	}

	warnings := 0
	for _, e := range events {
		if e.Level == LevelWarning {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("warnings = %d, want 2", warnings)
	}

	last := events[len(events)-1]
	if last.Level != LevelSuccess || !strings.Contains(last.Message, "2 skipped") {
		t.Errorf("last event = %+v, want success summary", last)
	}
}

func TestImporter_SkippedInFileOrder(t *testing.T) {
	names := []string{"bad1.mp3", "ok_2001.mp3", "bad2.mp3", "old_1850.mp3", "bad3.mp3", "bad4.mp3"}
	root := writeFiles(t, names...)

	want := []string{"bad1.mp3", "bad2.mp3", "bad3.mp3", "bad4.mp3", "old_1850.mp3"}

	// Repeat so that completion order has a chance to differ from file order.
	for run := 0; run < 20; run++ {
		report, err := New(&fakeReader{}, 4, nil).Scan(context.Background(), root, born)
		if err != nil {
			t.Fatalf("Scan() unexpected error: %v", err)
		}

		var got []string
		for _, s := range report.Skipped {
			got = append(got, filepath.Base(s.Path))
			if s.Reason == "" {
				t.Errorf("%s skipped without a reason", s.Path)
			}
		}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Fatalf("run %d: skipped = %v, want %v", run, got, want)
		}
	}
}

func TestImporter_ScanErrors(t *testing.T) {
	t.Run("no audio files", func(t *testing.T) {
		root := writeFiles(t, "readme.txt")
		_, err := New(&fakeReader{}, 1, nil).Scan(context.Background(), root, born)
		if !errors.Is(err, ErrNoAudioFiles) {
			t.Errorf("Scan() error = %v, want ErrNoAudioFiles", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := New(&fakeReader{}, 1, nil).Scan(context.Background(), filepath.Join(t.TempDir(), "absent"), born)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Scan() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		root := writeFiles(t, "a_2001.mp3")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(&fakeReader{}, 1, nil).Scan(ctx, root, born)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Scan() error = %v, want context.Canceled", err)
		}
	})
}

func TestNew_ClampsConcurrency(t *testing.T) {
	if im := New(&fakeReader{}, 0, nil); im.concurrency != 1 {
		t.Errorf("concurrency = %d, want 1", im.concurrency)
	}
}
