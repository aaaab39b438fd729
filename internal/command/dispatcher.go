package command

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/TerminTURK/AlbumCollectionManager/internal/audio"
	"github.com/TerminTURK/AlbumCollectionManager/internal/collection"
	"github.com/TerminTURK/AlbumCollectionManager/internal/importer"
	"github.com/TerminTURK/AlbumCollectionManager/internal/logger"
	"github.com/TerminTURK/AlbumCollectionManager/internal/model"
	"github.com/TerminTURK/AlbumCollectionManager/internal/render"
)

// Level classifies a Message for display.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Message is one line of output.
type Message struct {
	Text  string
	Level Level
}

// Result is the output of one command.
type Result struct {
	Messages []Message

	// Quit is set by VerbQuit; no further commands should be read.
	Quit bool
}

func (r *Result) add(level Level, format string, args ...any) {
	r.Messages = append(r.Messages, Message{Text: fmt.Sprintf(format, args...), Level: level})
}

// Options configures a Dispatcher. Zero values select defaults.
type Options struct {
	// Listing renders print commands. Nil prints Album.String lines.
	Listing *render.Listing

	// Reader reads tags for VerbImport. Nil uses audio.NewTagReader.
	Reader importer.AlbumReader

	// ImportConcurrency bounds parallel tag reads.
	ImportConcurrency int

	Logger *slog.Logger
}

// Dispatcher executes commands against a collection and produces the
// user-facing messages. It is not safe for concurrent use.
type Dispatcher struct {
	store       *collection.Collection
	listing     *render.Listing
	reader      importer.AlbumReader
	concurrency int
	log         *slog.Logger
}

// New creates a Dispatcher over store.
func New(store *collection.Collection, opts Options) *Dispatcher {
	d := &Dispatcher{
		store:       store,
		listing:     opts.Listing,
		reader:      opts.Reader,
		concurrency: opts.ImportConcurrency,
		log:         opts.Logger,
	}
	if d.listing == nil {
		d.listing = render.NewListing(render.FormatPlain)
	}
	if d.reader == nil {
		d.reader = audio.NewTagReader()
	}
	if d.log == nil {
		d.log = logger.Discard()
	}
	return d
}

// Started is the line shown when a session begins.
func Started() Message {
	return Message{Text: "Collection Manager is up running.", Level: LevelInfo}
}

func terminated() Message {
	return Message{Text: "Collection Manager terminated.", Level: LevelInfo}
}

// Handle parses and executes one command line. Blank lines yield an
// empty Result.
func (d *Dispatcher) Handle(ctx context.Context, line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}
	}

	cmd, err := Parse(line)
	if err != nil {
		return d.reject(line, err)
	}
	return d.Execute(ctx, cmd)
}

// Execute runs cmd against the collection.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) Result {
	d.log.Debug("executing command", "verb", string(cmd.Verb), "title", cmd.Title, "artist", cmd.Artist)

	switch cmd.Verb {
	case VerbAdd:
		return d.add(cmd)
	case VerbRemove:
		return d.remove(cmd)
	case VerbRate:
		return d.rate(cmd)
	case VerbPrintByDate:
		return d.print(collection.OrderByDate)
	case VerbPrintByGenre:
		return d.print(collection.OrderByGenre)
	case VerbPrintByRating:
		return d.print(collection.OrderByRating)
	case VerbImport:
		return d.importTags(ctx, cmd)
	case VerbQuit:
		return Result{Messages: []Message{terminated()}, Quit: true}
	default:
		return d.reject(string(cmd.Verb), &ParseError{Kind: KindUnknownVerb, Token: string(cmd.Verb)})
	}
}

// MaxLineLength bounds a command line in bytes. Longer lines are
// rejected and skipped.
const MaxLineLength = 64 * 1024

// Run reads command lines from r and writes messages to w until a quit
// command, the end of input or the cancellation of ctx.
//
// Lines are read on a separate goroutine so that cancellation is seen
// while r blocks. On cancellation the terminated line is written and
// ctx's error returned; a read still blocked in r is abandoned.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	defer out.Flush()

	write := func(msgs ...Message) error {
		for _, m := range msgs {
			if _, err := fmt.Fprintln(out, m.Text); err != nil {
				return err
			}
		}
		return out.Flush()
	}

	if err := write(Started()); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(r, done)

	for {
		select {
		case <-ctx.Done():
			if err := write(terminated()); err != nil {
				return err
			}
			return ctx.Err()

		case in, ok := <-lines:
			if !ok {
				return write(terminated())
			}
			if in.err != nil {
				return fmt.Errorf("failed to read commands: %w", in.err)
			}

			var res Result
			if in.tooLong {
				res = d.reject(in.text, &ParseError{Kind: KindInvalidData, Token: in.text + "..."})
			} else {
				res = d.Handle(ctx, in.text)
			}

			if err := write(res.Messages...); err != nil {
				return err
			}
			if res.Quit {
				return nil
			}
		}
	}
}

// inputLine is one line read by readLines. For a line over
// MaxLineLength, tooLong is set and text holds only its start.
type inputLine struct {
	text    string
	tooLong bool
	err     error
}

// tooLongPrefix is how much of an overlong line is kept for messages.
const tooLongPrefix = 32

// readLines reads r line by line on its own goroutine. The channel is
// closed at the end of input, after a read error, or once done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		br := bufio.NewReader(r)
		for {
			in, err := readLine(br)
			if err == nil || in.text != "" || in.tooLong {
				select {
				case lines <- in:
				case <-done:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case lines <- inputLine{err: err}:
					case <-done:
					}
				}
				return
			}
		}
	}()

	return lines
}

// readLine reads up to the next newline without holding more than
// MaxLineLength bytes of it.
func readLine(br *bufio.Reader) (inputLine, error) {
	var buf []byte
	var in inputLine

	for {
		chunk, err := br.ReadSlice('\n')
		if !in.tooLong {
			if len(buf)+len(chunk) > MaxLineLength {
				in.tooLong = true
				buf = append(buf, chunk...)[:tooLongPrefix]
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		in.text = strings.TrimRight(string(buf), "\r\n")
		return in, err
	}
}

func (d *Dispatcher) reject(line string, err error) Result {
	d.log.Warn("command rejected", "line", line, "error", err)

	var res Result
	var perr *ParseError
	switch {
	case errors.As(err, &perr) && perr.Kind == KindMissingTokens:
		res.add(LevelError, "Missing data tokens.")
	case errors.As(err, &perr) && perr.Kind == KindInvalidData:
		res.add(LevelError, "Invalid data: %s", perr.Token)
	default:
		res.add(LevelError, "Invalid command!")
	}
	return res
}

func (d *Dispatcher) add(cmd Command) Result {
	var res Result

	if !cmd.Released.IsValid() {
		res.add(LevelError, "Date Released: %s is invalid.", cmd.ReleasedRaw)
		return res
	}
	if !cmd.Born.IsValid() {
		res.add(LevelError, "Artist DOB: %s is invalid.", cmd.BornRaw)
		return res
	}

	album := model.NewAlbum(cmd.Title, model.NewArtist(cmd.Artist, cmd.Born), cmd.Genre, cmd.Released)
	label := fmt.Sprintf("%s(%s:%s)", cmd.Title, cmd.Artist, shortDate(cmd.Born))
	if d.store.Add(album) {
		res.add(LevelSuccess, "%s added to the collection.", label)
	} else {
		res.add(LevelWarning, "%s is already in the collection.", label)
	}
	return res
}

func (d *Dispatcher) remove(cmd Command) Result {
	var res Result
	if d.store.Remove(model.NewAlbumKey(cmd.Title, cmd.Artist)) {
		res.add(LevelSuccess, "%s(%s) removed from the collection.", cmd.Title, cmd.Artist)
	} else {
		res.add(LevelWarning, "%s(%s) is not in the collection.", cmd.Title, cmd.Artist)
	}
	return res
}

func (d *Dispatcher) rate(cmd Command) Result {
	var res Result
	key := model.NewAlbumKey(cmd.Title, cmd.Artist)

	album, ok := d.store.Get(key)
	if !ok {
		res.add(LevelWarning, "%s(%s) is not in the collection.", cmd.Title, cmd.Artist)
		return res
	}

	if err := d.store.Rate(key, cmd.Star); err != nil {
		d.log.Warn("rating rejected", "title", cmd.Title, "star", cmd.Star, "error", err)
		res.add(LevelError, "Invalid rating, rating scale is %d to %d.", model.MinStars, model.MaxStars)
		return res
	}

	res.add(LevelSuccess, "You rate %d for %s:%s(%s)", cmd.Star, cmd.Title, album.Released, cmd.Artist)
	return res
}

func (d *Dispatcher) print(order collection.Order) Result {
	var res Result
	if d.store.IsEmpty() {
		res.add(LevelWarning, "Collection is empty!")
		return res
	}

	var lines []string
	if d.listing.Format() == render.FormatPlain {
		var buf bytes.Buffer
		if err := d.store.Print(&buf, order); err != nil {
			res.add(LevelError, "Print failed: %v", err)
			return res
		}
		lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	} else {
		lines = d.listing.Lines(d.store.Sorted(order))
	}

	for _, line := range lines {
		res.Messages = append(res.Messages, Message{Text: line, Level: LevelInfo})
	}
	d.log.Debug("printed collection", "order", order.String(), "albums", len(lines))
	return res
}

func (d *Dispatcher) importTags(ctx context.Context, cmd Command) Result {
	var res Result

	if !cmd.Born.IsValid() {
		res.add(LevelError, "Artist DOB: %s is invalid.", cmd.BornRaw)
		return res
	}

	im := importer.New(d.reader, d.concurrency, func(e importer.ProgressEvent) {
		switch e.Level {
		case importer.LevelWarning:
			d.log.Warn(e.Message, "path", cmd.Path)
		case importer.LevelError:
			d.log.Error(e.Message, "path", cmd.Path)
		case importer.LevelVerbose:
			d.log.Debug(e.Message, "path", cmd.Path)
		default:
			d.log.Info(e.Message, "path", cmd.Path)
		}
	})

	report, err := im.Scan(ctx, cmd.Path, cmd.Born)
	if err != nil {
		res.add(LevelError, "Import failed: %v", err)
		return res
	}

	for _, s := range report.Skipped {
		res.add(LevelWarning, "Skipping %s: %s", s.Path, s.Reason)
	}

	// Tracks of one album each yield the album; report it once.
	var seen []*model.Album
	added := 0
	for _, album := range report.Albums {
		if containsAlbum(seen, album) {
			continue
		}
		seen = append(seen, album)

		label := fmt.Sprintf("%s(%s:%s)", album.Title, album.Artist.Name, shortDate(cmd.Born))
		if d.store.Add(album) {
			added++
			res.add(LevelSuccess, "%s added to the collection.", label)
		} else {
			res.add(LevelWarning, "%s is already in the collection.", label)
		}
	}

	res.add(LevelInfo, "%d album(s) imported from %s.", added, cmd.Path)
	return res
}

func containsAlbum(albums []*model.Album, a *model.Album) bool {
	for _, s := range albums {
		if s.Equal(a) {
			return true
		}
	}
	return false
}

// shortDate formats d as m/d/yyyy without zero padding.
func shortDate(d model.Date) string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}
