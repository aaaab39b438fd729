// Package audio reads album metadata from MP3 files.
//
// # ID3 Tags
//
// Use the TagReader to turn a tagged MP3 file into a catalog album:
//
//	reader := audio.NewTagReader()
//	album, err := reader.ReadAlbum("/music/kind-of-blue/01.mp3", born)
//
// The reader maps these frames:
//   - TALB: album title
//   - TPE2: album artist, falling back to TPE1 (lead artist)
//   - TCON: genre, by name or ID3v1 code
//   - TDRC: release date, falling back to TYER
//
// Genres outside the catalog (Rock, Blues, ...) resolve to UNKNOWN.
package audio
