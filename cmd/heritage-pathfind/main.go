// cmd/heritage-pathfind resolves the shortest relationship chain
// between two persons in a delimited genealogy table and prints it,
// one step per line, walking from the more distant relative toward the
// query subject:
//
//	$ heritage-pathfind family.csv 1 5
//	Wilhelm(5) is Father of
//	Robert(3) is Father of
//	Karl(2) is Father of
//	Anna(1)
//
// When no chain exists the tool prints a message and exits zero; that
// is an answer, not a failure. File, parse and unknown-identifier
// errors exit non-zero.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/scrypster/heritage/internal/engine"
	"github.com/scrypster/heritage/internal/ingest"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: heritage-pathfind [flags] <table> <start-id> <finish-id>")
	fmt.Fprintln(os.Stderr, "Example: heritage-pathfind path/to/family.csv 1 32")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("heritage-pathfind: ")
	log.SetFlags(0)

	manifestPath := flag.String("manifest", "", "Path to a YAML column manifest for localized tables")
	delimiter := flag.String("delimiter", "", "Field delimiter override (single character)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}

	startID, err := strconv.ParseInt(flag.Arg(1), 10, 64)
	if err != nil {
		log.Fatalf("start id %q is not an integer", flag.Arg(1))
	}
	finishID, err := strconv.ParseInt(flag.Arg(2), 10, 64)
	if err != nil {
		log.Fatalf("finish id %q is not an integer", flag.Arg(2))
	}

	opts := ingest.Options{}
	if *manifestPath != "" {
		m, err := ingest.LoadManifest(*manifestPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		opts = m.Options()
	}
	if *delimiter != "" {
		runes := []rune(*delimiter)
		if len(runes) != 1 {
			log.Fatalf("delimiter must be a single character, got %q", *delimiter)
		}
		opts.Delimiter = runes[0]
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open table: %v", err)
	}
	defer f.Close()

	ds, err := ingest.ReadDataset(f, opts)
	if err != nil {
		log.Fatalf("%v", err)
	}

	steps, err := engine.New(ds).Resolve(context.Background(), startID, finishID)
	if errors.Is(err, engine.ErrNoRelationship) {
		fmt.Println("No direct or indirect relationship found")
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(engine.FormatChain(steps))
}
