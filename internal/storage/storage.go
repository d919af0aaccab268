package storage

import (
	"database/sql"

	"github.com/goserg/foodlog/internal/migrate"

	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

// Open connects to the sqlite file and brings its schema up to date.
// Auth and food storages share the returned handle.
func Open(fileName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}
	err = migrate.Up(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}
