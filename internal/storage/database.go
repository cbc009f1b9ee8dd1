package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"name" TEXT NOT NULL,
		"email" TEXT NOT NULL UNIQUE,
		"password_hash" TEXT NOT NULL
);`

// Open opens (creating if needed) the sqlite database at path and ensures
// the users table exists. The returned handle pools connections and is safe
// for concurrent use.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if _, err := db.Exec(createUsersTable); err != nil {
		return nil, fmt.Errorf("create users table: %w", err)
	}
	return db, nil
}
