package bed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// Sex codes used in the fifth column of a .fam file.
const (
	SexUnknown = 0
	SexMale    = 1
	SexFemale  = 2
)

const famColumns = 6

// Subject is one row of a PLINK .fam file.
type Subject struct {
	FamilyID  string
	SubjectID string
	FatherID  string
	MotherID  string
	Sex       int
	Phenotype string
}

// ReadFam parses the .fam file at path (local or gs://).
func ReadFam(path string) ([]Subject, error) {
	f, err := openPath(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	subjects, err := parseFam(f)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	return subjects, nil
}

func parseFam(r io.Reader) ([]Subject, error) {
	var subjects []Subject

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != famColumns {
			return nil, fmt.Errorf("line %d has %d columns; expected %d", line, len(fields), famColumns)
		}

		sex, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("line %d: sex %q is not an integer", line, fields[4])
		}

		subjects = append(subjects, Subject{
			FamilyID:  fields[0],
			SubjectID: fields[1],
			FatherID:  fields[2],
			MotherID:  fields[3],
			Sex:       sex,
			Phenotype: fields[5],
		})
	}

	return subjects, scanner.Err()
}

// WriteFam writes subjects in .fam layout.
func WriteFam(w io.Writer, subjects []Subject) error {
	bw := bufio.NewWriter(w)
	for _, s := range subjects {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\t%s\n", s.FamilyID, s.SubjectID, s.FatherID, s.MotherID, s.Sex, s.Phenotype); err != nil {
			return pfx.Err(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// SubjectIDs returns the within-family IDs, which label the matrix rows.
func SubjectIDs(subjects []Subject) []string {
	out := make([]string, len(subjects))
	for i, s := range subjects {
		out[i] = s.SubjectID
	}
	return out
}

// SexVector classifies each subject as female (true) or male (false). A
// subject with any other sex code is an error: there is no default.
func SexVector(subjects []Subject) ([]bool, error) {
	female := make([]bool, len(subjects))
	for i, s := range subjects {
		switch s.Sex {
		case SexFemale:
			female[i] = true
		case SexMale:
		default:
			return nil, pfx.Err(fmt.Errorf("subject %s (row %d) has sex code %d; expected %d or %d", s.SubjectID, i, s.Sex, SexMale, SexFemale))
		}
	}
	return female, nil
}
