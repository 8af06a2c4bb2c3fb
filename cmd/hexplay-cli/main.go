package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hailam/hexplay/internal/cli"
	"github.com/hailam/hexplay/internal/storage"
)

var noStore = flag.Bool("no-store", false, "run without the saved-game database")

func main() {
	flag.Parse()

	var store *storage.Storage
	if !*noStore {
		var err error
		store, err = storage.NewStorage()
		if err != nil {
			log.Printf("Warning: storage unavailable: %v (save/load disabled)", err)
		} else {
			defer store.Close()
		}
	}

	fmt.Println("hexplay - Glinski hexagonal chess")
	fmt.Println("Type help for commands.")

	session := cli.New(store, os.Stdout)
	session.Run(os.Stdin)
}
