package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/bed"
	"github.com/carbocation/pfx"
)

func main() {
	bfile := flag.String("bfile", "", "Prefix of the .bed/.bim/.fam fileset to process")
	dbPath := flag.String("db", "", "SQLite file to write. Defaults to <bfile>.summary.db")
	show := flag.Int("show", 10, "Number of stored markers to print back")
	flag.Parse()

	if *bfile == "" {
		flag.PrintDefaults()
		log.Fatalln("No fileset given")
	}

	if strings.HasPrefix(*bfile, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*bfile = filepath.Join(usr.HomeDir, (*bfile)[2:])
	}

	if *dbPath == "" {
		*dbPath = *bfile + ".summary.db"
	}

	fs, err := bed.ReadFileset(*bfile)
	if err != nil {
		log.Fatalln(err)
	}

	rows := bed.SummarizeFileset(fs)
	if err := bed.CreateSummaryDB(*dbPath, *bfile+".bed", fs.Matrix.NSubjects(), rows); err != nil {
		log.Fatalln(err)
	}

	sdb, err := bed.OpenSummaryDB(*dbPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer sdb.Close()

	log.Printf("Summary metadata: %+v\n", sdb.Metadata)

	stored, err := sdb.Markers()
	if err != nil {
		log.Fatalln(err)
	}
	for i, row := range stored {
		if i >= *show {
			break
		}
		fmt.Printf("%d) %+v call rate %.3f\n", i, row, row.CallRate())
	}

	log.Println("Saw summaries for", len(stored), "markers")
}
