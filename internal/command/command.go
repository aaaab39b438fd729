package command

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/TerminTURK/AlbumCollectionManager/internal/model"
)

// Verb is the first field of a command line.
type Verb string

const (
	VerbAdd           Verb = "A"
	VerbRemove        Verb = "D"
	VerbRate          Verb = "R"
	VerbPrintByDate   Verb = "PD"
	VerbPrintByGenre  Verb = "PG"
	VerbPrintByRating Verb = "PR"
	VerbImport        Verb = "I"
	VerbQuit          Verb = "Q"
)

// Command is a parsed command line. Only the fields used by Verb are set.
type Command struct {
	Verb Verb

	Title  string
	Artist string // as typed; model.NewArtist normalizes it

	Born    model.Date
	BornRaw string

	Genre model.Genre

	Released    model.Date
	ReleasedRaw string

	Star int

	// Path is the file or directory scanned by VerbImport.
	Path string
}

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	KindMissingTokens ErrorKind = iota
	KindInvalidData
	KindUnknownVerb
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingTokens:
		return "missing tokens"
	case KindInvalidData:
		return "invalid data"
	case KindUnknownVerb:
		return "unknown verb"
	default:
		return "unknown"
	}
}

// ParseError reports a line that could not be turned into a Command.
// It unwraps to model.ErrInvalidArgument.
type ParseError struct {
	Kind  ErrorKind
	Token string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return "parse command: " + e.Kind.String()
	}
	return fmt.Sprintf("parse command: %s %q", e.Kind, e.Token)
}

func (e *ParseError) Unwrap() error {
	return model.ErrInvalidArgument
}

// Parse splits a comma-separated command line into a Command.
//
// Fields are trimmed. Dates are checked for m/d/yyyy syntax only;
// calendar validity is left to the caller so it can report which date
// was wrong. Fields beyond those a verb uses are ignored.
//
// Example:
//
//	cmd, err := Parse("A,Blue,Joni Mitchell,11/7/1943,pop,6/22/1971")
//	// cmd.Verb == VerbAdd, cmd.Genre == model.GenrePop
func Parse(line string) (Command, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	verb := Verb(fields[0])
	args := fields[1:]
	cmd := Command{Verb: verb}

	switch verb {
	case VerbAdd:
		// An empty genre is allowed and reads as UNKNOWN.
		if err := need(args, 5, 3); err != nil {
			return Command{}, err
		}
		cmd.Title, cmd.Artist = args[0], args[1]
		cmd.BornRaw, cmd.ReleasedRaw = args[2], args[4]
		cmd.Genre = model.ParseGenre(args[3])

		var err error
		if cmd.Released, err = parseDate(cmd.ReleasedRaw); err != nil {
			return Command{}, err
		}
		if cmd.Born, err = parseDate(cmd.BornRaw); err != nil {
			return Command{}, err
		}

	case VerbRemove:
		if err := need(args, 2); err != nil {
			return Command{}, err
		}
		cmd.Title, cmd.Artist = args[0], args[1]

	case VerbRate:
		if err := need(args, 4); err != nil {
			return Command{}, err
		}
		cmd.Title, cmd.Artist = args[0], args[1]
		cmd.BornRaw = args[2] // carried but not used to find the album

		star, err := strconv.Atoi(args[3])
		if err != nil {
			return Command{}, &ParseError{Kind: KindInvalidData, Token: args[3]}
		}
		cmd.Star = star

	case VerbImport:
		if err := need(args, 2); err != nil {
			return Command{}, err
		}
		cmd.Path, cmd.BornRaw = args[0], args[1]

		var err error
		if cmd.Born, err = parseDate(cmd.BornRaw); err != nil {
			return Command{}, err
		}

	case VerbPrintByDate, VerbPrintByGenre, VerbPrintByRating, VerbQuit:

	default:
		return Command{}, &ParseError{Kind: KindUnknownVerb, Token: fields[0]}
	}

	return cmd, nil
}

// need checks that the first n arguments are present and that all but
// the optional positions are non-empty.
func need(args []string, n int, optional ...int) error {
	if len(args) < n {
		return &ParseError{Kind: KindMissingTokens}
	}
	for i, a := range args[:n] {
		if a == "" && !slices.Contains(optional, i) {
			return &ParseError{Kind: KindMissingTokens}
		}
	}
	return nil
}

func parseDate(raw string) (model.Date, error) {
	d, err := model.ParseDate(raw)
	if err != nil {
		return model.Date{}, &ParseError{Kind: KindInvalidData, Token: raw}
	}
	return d, nil
}
