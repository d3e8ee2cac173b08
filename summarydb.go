package bed

import (
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

const summarySchema = `
DROP TABLE IF EXISTS Metadata;
DROP TABLE IF EXISTS Marker;
CREATE TABLE Metadata (
	filename TEXT NOT NULL,
	number_of_subjects INTEGER NOT NULL,
	creation_time INTEGER NOT NULL
);
CREATE TABLE Marker (
	marker TEXT NOT NULL,
	chromosome TEXT NOT NULL,
	missing INTEGER NOT NULL,
	homozygous_a INTEGER NOT NULL,
	heterozygous INTEGER NOT NULL,
	homozygous_b INTEGER NOT NULL,
	uncertain INTEGER NOT NULL
);
`

const insertMarkerSummary = `INSERT INTO Marker
(marker, chromosome, missing, homozygous_a, heterozygous, homozygous_b, uncertain)
VALUES
(:marker, :chromosome, :missing, :homozygous_a, :heterozygous, :homozygous_b, :uncertain)`

// SummaryDB is a SQLite database of per-marker call counts.
type SummaryDB struct {
	DB       *sqlx.DB
	Metadata *SummaryMetadata
}

// SummaryMetadata conforms to the single row of the "Metadata" table.
type SummaryMetadata struct {
	Filename     string `db:"filename"`
	NSubjects    int    `db:"number_of_subjects"`
	CreationTime Time   `db:"creation_time"`
}

func (s *SummaryDB) Close() error {
	return s.DB.Close()
}

// sqliteDSN makes path a URI filename. URI filenames have to begin with
// 'file:'; see https://www.sqlite.org/c3ref/open.html
func sqliteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path
}

// CreateSummaryDB writes rows, plus a metadata row naming the source .bed,
// to a SQLite database at path. Existing summary tables are replaced.
func CreateSummaryDB(path, source string, nSubjects int, rows []MarkerSummary) error {
	db, err := openSQLite(sqliteDSN(path))
	if err != nil {
		return pfx.Err(err)
	}
	defer db.Close()

	if _, err := db.Exec(summarySchema); err != nil {
		return pfx.Err(err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO Metadata (filename, number_of_subjects, creation_time) VALUES (?, ?, ?)",
		source, nSubjects, time.Now().Unix()); err != nil {
		return pfx.Err(err)
	}

	for i := range rows {
		if _, err := tx.NamedExec(insertMarkerSummary, &rows[i]); err != nil {
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// OpenSummaryDB opens a database written by CreateSummaryDB.
func OpenSummaryDB(path string) (*SummaryDB, error) {
	db, err := openSQLite(sqliteDSN(path))
	if err != nil {
		return nil, pfx.Err(err)
	}

	s := &SummaryDB{DB: db, Metadata: &SummaryMetadata{}}
	if err := s.DB.Get(s.Metadata, "SELECT * FROM Metadata LIMIT 1"); err != nil {
		db.Close()
		return nil, pfx.Err(err)
	}

	return s, nil
}

// Markers returns the stored summaries in insertion order.
func (s *SummaryDB) Markers() ([]MarkerSummary, error) {
	var out []MarkerSummary
	if err := s.DB.Select(&out, "SELECT * FROM Marker ORDER BY rowid ASC"); err != nil {
		return nil, pfx.Err(err)
	}
	return out, nil
}
