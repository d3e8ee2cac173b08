// xfilter reads a PLINK binary fileset, keeps the X-linked markers, sets
// male heterozygous calls on them to missing and writes the corrected
// fileset.
package main

import (
	"flag"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/bed"
	"github.com/carbocation/pfx"
)

func main() {
	bfile := flag.String("bfile", "", "Prefix of the .bed/.bim/.fam fileset to process")
	out := flag.String("out", "", "Prefix for the corrected fileset")
	markerMajor := flag.Bool("marker-major", false, "Write the .bed in marker-major (individual-major) order")
	summary := flag.String("summary", "", "Optional SQLite file for per-marker call counts of the corrected fileset")
	flag.Parse()

	if *bfile == "" || *out == "" {
		flag.PrintDefaults()
		log.Fatalln("Both -bfile and -out are required")
	}

	*bfile = expandHome(*bfile)
	*out = expandHome(*out)

	log.Println("Reading fileset:", *bfile)
	fs, err := bed.ReadFileset(*bfile)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Loaded", fs.Matrix.NSubjects(), "subjects and", fs.Matrix.NMarkers(), "markers")

	female, err := bed.SexVector(fs.Subjects)
	if err != nil {
		log.Fatalln(err)
	}

	x := fs.SelectMarkers(bed.HemizygousMarkers(fs.Markers))
	if x.Matrix.NMarkers() == 0 {
		log.Fatalln("No X-linked markers found in", *bfile+".bim")
	}
	log.Println("Found", x.Matrix.NMarkers(), "X-linked markers")

	before := countMissing(x.Matrix)
	x.Matrix, err = bed.ApplySexFilter(x.Matrix, female, bed.DefaultResolver)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Set", countMissing(x.Matrix)-before, "male calls to missing")

	orientation := bed.SubjectMajor
	if *markerMajor {
		orientation = bed.MarkerMajor
	}
	if err := bed.WriteFileset(*out, x, orientation); err != nil {
		log.Fatalln(err)
	}
	log.Println("Wrote", *out, "in", orientation, "order")

	if *summary != "" {
		*summary = expandHome(*summary)
		if err := bed.CreateSummaryDB(*summary, *out+".bed", x.Matrix.NSubjects(), bed.SummarizeFileset(x)); err != nil {
			log.Fatalln(err)
		}
		log.Println("Wrote summary to", *summary, "using driver", bed.WhichSQLiteDriver())
	}
}

func countMissing(m *bed.Matrix) int {
	n := 0
	for _, code := range m.Codes {
		if code == uint8(bed.Missing) {
			n++
		}
	}
	return n
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	usr, err := user.Current()
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	return filepath.Join(usr.HomeDir, path[2:])
}
