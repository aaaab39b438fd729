// Package importer builds catalog albums from a tree of tagged MP3
// files.
//
// # Importer
//
// The Importer coordinates a scan:
//
//  1. List the MP3 files below a path
//  2. Read each file's tags concurrently
//  3. Set aside files without usable tags or release dates
//  4. Report albums and skipped files in file order
//
// # Basic Usage
//
//	im := importer.New(audio.NewTagReader(), 4, func(event importer.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	report, err := im.Scan(ctx, "/music", born)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range report.Skipped {
//	    fmt.Printf("skipped %s: %s\n", s.Path, s.Reason)
//	}
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// Callbacks are serialized, so the callback needs no locking of its own.
package importer
