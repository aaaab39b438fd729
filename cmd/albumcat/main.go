package main

import "github.com/TerminTURK/AlbumCollectionManager/internal/cli"

func main() {
	cli.Execute()
}
