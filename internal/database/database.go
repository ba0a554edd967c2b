package database

import (
	"database/sql"
	"fmt"
)

// Open connects to the engine registered under driver ("postgres" or "sqlite").
func Open(driver, url string) (*sql.DB, error) {
	switch driver {
	case "postgres":
		return NewPostgresConnection(url)
	case "sqlite":
		return NewSQLiteConnection(url)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
