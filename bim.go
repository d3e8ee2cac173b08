package bed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/genomisc"
	"github.com/carbocation/pfx"
)

const bimColumns = 6

// ReadBim parses the .bim file at path (local or gs://). The genetic
// distance column is not retained.
func ReadBim(path string) ([]genomisc.BIMRow, error) {
	f, err := openPath(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := parseBim(f)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	return rows, nil
}

func parseBim(r io.Reader) ([]genomisc.BIMRow, error) {
	var rows []genomisc.BIMRow

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != bimColumns {
			return nil, fmt.Errorf("line %d has %d columns; expected %d", line, len(fields), bimColumns)
		}

		pos, err := strconv.ParseUint(fields[genomisc.Coordinate], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: position %q: %w", line, fields[genomisc.Coordinate], err)
		}

		rows = append(rows, genomisc.BIMRow{
			Chromosome: fields[genomisc.Chromosome],
			VariantID:  fields[genomisc.VariantID],
			Coordinate: uint32(pos),
			Allele1:    fields[genomisc.Allele1],
			Allele2:    fields[genomisc.Allele2],
		})
	}

	return rows, scanner.Err()
}

// WriteBim writes rows in .bim layout with a zero genetic distance.
func WriteBim(w io.Writer, rows []genomisc.BIMRow) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t0\t%d\t%s\t%s\n", r.Chromosome, r.VariantID, r.Coordinate, r.Allele1, r.Allele2); err != nil {
			return pfx.Err(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// MarkerIDs returns the variant IDs, which label the matrix columns.
func MarkerIDs(rows []genomisc.BIMRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.VariantID
	}
	return out
}

// HemizygousMarkers returns the indexes of rows on a chromosome that males
// carry a single copy of.
func HemizygousMarkers(rows []genomisc.BIMRow) []int {
	var idx []int
	for i, r := range rows {
		if IsHemizygous(r.Chromosome) {
			idx = append(idx, i)
		}
	}
	return idx
}
