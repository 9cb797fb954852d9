// Vecscore recovers symbolic music events from a page-description file
// containing vector drawing operations and prints a summary of what it
// recognized.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/inq/sprout"
	"github.com/inq/sprout/recognizer"
)

func main() {
	args := os.Args[1:]
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s input.json\n", os.Args[0])
		os.Exit(1)
	}

	f, err := os.Open(args[0])
	if err != nil {
		log.Fatal(err)
	}
	demux, err := readDemux(f)
	if err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	pages, err := sprout.Run(demux, recognizer.DefaultTunables(), sprout.DefaultBPM)
	if err != nil {
		log.Fatal(err)
	}

	stanzaCounts := make(map[int]int, len(pages))
	for i, page := range pages {
		stanzaCounts[i] = len(page.Stanzas)
	}
	pageIndices := maps.Keys(stanzaCounts)
	sort.Ints(pageIndices)

	fmt.Println("page | stanzas | events")
	fmt.Println("-----+---------+-------")
	for _, i := range pageIndices {
		fmt.Printf("%4d | %7d | %6d\n", i, stanzaCounts[i], len(pages[i].Track))
	}
}
