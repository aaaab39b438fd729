// Package command implements the album collection's line protocol.
//
// Each line is a comma-separated command whose first field is a verb:
//
//	A,<title>,<artist>,<artist DOB>,<genre>,<release date>   add an album
//	D,<title>,<artist>                                       remove an album
//	R,<title>,<artist>,<artist DOB>,<stars>                  rate an album
//	PD | PG | PR                                             list by date, genre or rating
//	I,<path>,<artist DOB>                                    import albums from MP3 tags
//	Q                                                        quit
//
// Dates are written m/d/yyyy. Parse turns a line into a Command, and a
// Dispatcher executes commands against a collection and produces the
// lines shown to the user:
//
//	d := command.New(collection.New(), command.Options{})
//	err := d.Run(ctx, os.Stdin, os.Stdout)
//
// Malformed lines are reported and skipped; they never end a session.
package command
