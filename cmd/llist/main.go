package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/pengdafu/llist-golang/llist"
)

func main() {
	rosterPath := flag.String("roster", "roster.yaml", "YAML file with the employee records")
	split := flag.Int("split", 3, "number of records to split off the merged list")
	flag.Parse()

	if err := run(os.Stdout, *rosterPath, *split); err != nil {
		log.Fatalln(err)
	}
}

func run(w io.Writer, rosterPath string, split int) error {
	roster, err := loadRoster(rosterPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d records from %s", len(roster), rosterPath)

	even, odd := sortedHalves(roster)
	log.Printf("sorted halves: %d and %d records", even.Len(), odd.Len())

	merged := llist.Merge(even, odd)
	defer merged.Destroy()
	log.Printf("merged %d records", merged.Len())
	if err := merged.Dump(w); err != nil {
		return err
	}

	front := merged.Split(split)
	if front == merged {
		log.Printf("split %d: list has only %d records, nothing split", split, merged.Len())
		return nil
	}
	defer front.Destroy()

	log.Printf("split off %d records", front.Len())
	if err := front.Dump(w); err != nil {
		return err
	}
	log.Printf("%d records remain", merged.Len())
	return merged.Dump(w)
}
