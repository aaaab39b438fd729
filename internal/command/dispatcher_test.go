package command

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/TerminTURK/AlbumCollectionManager/internal/collection"
	"github.com/TerminTURK/AlbumCollectionManager/internal/model"
	"github.com/TerminTURK/AlbumCollectionManager/internal/render"
)

func TestDispatcher_RunSession(t *testing.T) {
	input := strings.Join([]string{
		"A,Blue,Joni Mitchell,11/7/1943,pop,6/22/1971",
		"A,blue,JONI MITCHELL,11/7/1943,jazz,1/1/1980",
		"A,Court,Joni Mitchell,11/7/1943,pop,2/29/2021",
		"A,Court,Joni Mitchell,2/30/1943,pop,1/17/1974",
		"R,Blue,Joni Mitchell,11/7/1943,5",
		"R,Blue,Joni Mitchell,11/7/1943,6",
		"R,Hejira,Joni Mitchell,11/7/1943,3",
		"PD",
		"D,Blue,Joni Mitchell",
		"D,Blue,Joni Mitchell",
		"PR",
		"X",
		"A,Blue",
		"R,Blue,Joni Mitchell,11/7/1943,five",
		"",
		"Q",
		"A,After,Quit,1/1/1950,pop,1/1/1990",
	}, "\n")

	want := strings.Join([]string{
		"Collection Manager is up running.",
		"Blue(Joni Mitchell:11/7/1943) added to the collection.",
		"blue(JONI MITCHELL:11/7/1943) is already in the collection.",
		"Date Released: 2/29/2021 is invalid.",
		"Artist DOB: 2/30/1943 is invalid.",
		"You rate 5 for Blue:06/22/1971(Joni Mitchell)",
		"Invalid rating, rating scale is 1 to 5.",
		"Hejira(Joni Mitchell) is not in the collection.",
		"[Blue] Released 06/22/1971 [joni mitchell:11/07/1943] [POP] Rating: *(0)**(0)***(0)****(0)*****(1) (average rating: 5.00)",
		"Blue(Joni Mitchell) removed from the collection.",
		"Blue(Joni Mitchell) is not in the collection.",
		"Collection is empty!",
		"Invalid command!",
		"Missing data tokens.",
		"Invalid data: five",
		"Collection Manager terminated.",
	}, "\n") + "\n"

	var out bytes.Buffer
	d := New(collection.New(), Options{})
	if err := d.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if out.String() != want {
		t.Errorf("Run() output mismatch\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestDispatcher_RunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	d := New(collection.New(), Options{})
	if err := d.Run(context.Background(), strings.NewReader("PG\n"), &out); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := "Collection Manager is up running.\nCollection is empty!\nCollection Manager terminated.\n"
	if out.String() != want {
		t.Errorf("Run() = %q, want %q", out.String(), want)
	}
}

func TestDispatcher_RunOverlongLine(t *testing.T) {
	long := "A," + strings.Repeat("x", 70000) + ",Joni Mitchell,11/7/1943,pop,6/22/1971"
	input := long + "\nA,Blue,Joni Mitchell,11/7/1943,pop,6/22/1971\nQ\n"

	var out bytes.Buffer
	d := New(collection.New(), Options{})
	if err := d.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Collection Manager is up running.",
		"Invalid data: A," + strings.Repeat("x", 30) + "...",
		"Blue(Joni Mitchell:11/7/1943) added to the collection.",
		"Collection Manager terminated.",
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("Run() output mismatch\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestDispatcher_RunCancelWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	d := New(collection.New(), Options{})

	errc := make(chan error, 1)
	go func() { errc <- d.Run(ctx, pr, &out) }()

	// Nothing is ever written, so Run is waiting on input here.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}

	want := "Collection Manager is up running.\nCollection Manager terminated.\n"
	if out.String() != want {
		t.Errorf("Run() = %q, want %q", out.String(), want)
	}
}

func TestReadLine(t *testing.T) {
	input := "PD\r\n\n" + strings.Repeat("y", MaxLineLength) + "\nQ"
	br := bufio.NewReaderSize(strings.NewReader(input), 16)

	tests := []struct {
		text    string
		tooLong bool
		err     error
	}{
		{"PD", false, nil},
		{"", false, nil},
		{strings.Repeat("y", tooLongPrefix), true, nil},
		{"Q", false, io.EOF},
	}

	for i, tt := range tests {
		in, err := readLine(br)
		if in.text != tt.text || in.tooLong != tt.tooLong || !errors.Is(err, tt.err) {
			t.Errorf("line %d: readLine() = (%q, tooLong %v, %v), want (%q, tooLong %v, %v)",
				i, in.text, in.tooLong, err, tt.text, tt.tooLong, tt.err)
		}
	}
}

func TestDispatcher_PrintOrders(t *testing.T) {
	store := collection.New()
	d := New(store, Options{})
	ctx := context.Background()

	for _, line := range []string{
		"A,Zed,Alpha,1/1/1950,jazz,3/3/2003",
		"A,Abe,Beta,1/1/1950,classical,1/1/2001",
		"A,Moe,Gamma,1/1/1950,pop,2/2/2002",
		"R,Moe,Gamma,1/1/1950,5",
		"R,Zed,Alpha,1/1/1950,2",
	} {
		if res := d.Handle(ctx, line); len(res.Messages) != 1 || res.Messages[0].Level != LevelSuccess {
			t.Fatalf("Handle(%q) = %+v", line, res)
		}
	}

	tests := []struct {
		line string
		want []string
	}{
		{"PD", []string{"[Abe]", "[Moe]", "[Zed]"}},
		{"PG", []string{"[Abe]", "[Zed]", "[Moe]"}},
		{"PR", []string{"[Moe]", "[Zed]", "[Abe]"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			res := d.Handle(ctx, tt.line)
			if len(res.Messages) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(res.Messages), len(tt.want))
			}
			for i, prefix := range tt.want {
				if !strings.HasPrefix(res.Messages[i].Text, prefix) {
					t.Errorf("line %d = %q, want prefix %q", i, res.Messages[i].Text, prefix)
				}
			}
		})
	}

	var titles []string
	for _, a := range store.Albums() {
		titles = append(titles, a.Title)
	}
	if strings.Join(titles, ",") != "Zed,Abe,Moe" {
		t.Errorf("store order = %v after printing, want insertion order", titles)
	}
}

func TestDispatcher_StyledListing(t *testing.T) {
	d := New(collection.New(), Options{Listing: render.NewListing(render.FormatStyled)})
	ctx := context.Background()

	d.Handle(ctx, "A,Blue,Joni Mitchell,11/7/1943,pop,6/22/1971")
	res := d.Handle(ctx, "PD")

	if len(res.Messages) != 1 {
		t.Fatalf("got %d lines, want 1", len(res.Messages))
	}
	line := res.Messages[0].Text
	if strings.HasPrefix(line, "[Blue]") || !strings.Contains(line, "Blue") || !strings.Contains(line, "unrated") {
		t.Errorf("styled line = %q", line)
	}
}

func TestDispatcher_ExecuteQuit(t *testing.T) {
	res := New(collection.New(), Options{}).Execute(context.Background(), Command{Verb: VerbQuit})
	if !res.Quit || len(res.Messages) != 1 || res.Messages[0].Text != "Collection Manager terminated." {
		t.Errorf("Execute(Q) = %+v", res)
	}
}

// stubReader serves fixed albums keyed by file base name.
type stubReader map[string]string

func (s stubReader) ReadAlbum(path string, born model.Date) (*model.Album, error) {
	title, ok := s[filepath.Base(path)]
	if !ok {
		return nil, errors.New("no tags")
	}
	return model.NewAlbum(title, model.NewArtist("Joni Mitchell", born), model.GenrePop, model.NewDate(1971, 6, 22)), nil
}

func TestDispatcher_Import(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"01.mp3", "02.mp3", "03.mp3", "04.mp3"} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	reader := stubReader{"01.mp3": "Blue", "02.mp3": "Blue", "03.mp3": "Hejira"}
	store := collection.New()
	d := New(store, Options{Reader: reader, ImportConcurrency: 2})
	ctx := context.Background()

	d.Handle(ctx, "A,Hejira,Joni Mitchell,11/7/1943,pop,11/22/1976")
	res := d.Handle(ctx, "I,"+root+",11/7/1943")

	var texts []string
	for _, m := range res.Messages {
		texts = append(texts, m.Text)
	}
	got := strings.Join(texts, "\n")

	for _, want := range []string{
		"Blue(joni mitchell:11/7/1943) added to the collection.",
		"Hejira(joni mitchell:11/7/1943) is already in the collection.",
		"1 album(s) imported from " + root + ".",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("import output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "Blue(") != 1 {
		t.Errorf("Blue reported more than once:\n%s", got)
	}
	if !strings.Contains(got, "04.mp3") {
		t.Errorf("unreadable file not reported:\n%s", got)
	}
	if store.Len() != 2 {
		t.Errorf("store.Len() = %d, want 2", store.Len())
	}
}

func TestDispatcher_ImportErrors(t *testing.T) {
	d := New(collection.New(), Options{Reader: stubReader{}})
	ctx := context.Background()

	tests := []struct {
		line string
		want string
	}{
		{"I," + t.TempDir() + ",2/30/1943", "Artist DOB: 2/30/1943 is invalid."},
		{"I," + filepath.Join(t.TempDir(), "absent") + ",1/1/1950", "Import failed:"},
		{"I," + t.TempDir() + ",1/1/1950", "Import failed:"},
	}

	for _, tt := range tests {
		res := d.Handle(ctx, tt.line)
		if len(res.Messages) != 1 || !strings.HasPrefix(res.Messages[0].Text, tt.want) {
			t.Errorf("Handle(%q) = %+v, want %q", tt.line, res.Messages, tt.want)
		}
		if res.Messages[0].Level != LevelError {
			t.Errorf("Handle(%q) level = %v, want LevelError", tt.line, res.Messages[0].Level)
		}
	}
}

func TestDispatcher_ImportWarningsInFileOrder(t *testing.T) {
	root := t.TempDir()
	var want []string
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("%02d.mp3", i)
		if err := os.WriteFile(filepath.Join(root, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
		want = append(want, "Skipping "+filepath.Join(root, name)+": no tags")
	}

	for run := 0; run < 10; run++ {
		d := New(collection.New(), Options{Reader: stubReader{}, ImportConcurrency: 4})
		res := d.Handle(context.Background(), "I,"+root+",11/7/1943")

		var got []string
		for _, m := range res.Messages {
			if m.Level == LevelWarning {
				got = append(got, m.Text)
			}
		}
		if strings.Join(got, "\n") != strings.Join(want, "\n") {
			t.Fatalf("run %d: warnings =\n%s\nwant\n%s", run, strings.Join(got, "\n"), strings.Join(want, "\n"))
		}
	}
}
