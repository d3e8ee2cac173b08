//go:build !cgo

package bed

// If cgo is not enabled, we will use the modernc.org/sqlite non-cgo sqlite
// driver. It is slower than the sqlite3 cgo driver.

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

const whichSQLiteDriver = "sqlite"

func openSQLite(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(whichSQLiteDriver, dsn)
	if err != nil {
		return nil, err
	}

	// See https://www.rockyourcode.com/til-sqlite-foreign-key-support-with-go/
	_, err = db.DB.Exec(`
	PRAGMA journal_mode = OFF;
	PRAGMA synchronous = OFF;
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to set pragmas: %w", err)
	}

	return db, nil
}
