package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteRepository handles user persistence in SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed user repository
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, created_at) VALUES (?, ?, ?)`,
		req.Name, req.Email, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return &User{ID: id, Name: req.Name, Email: req.Email, CreatedAt: now}, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return checkDeleted(result)
}

// NewRepository picks the repository implementation for the given driver.
func NewRepository(driver string, db *sql.DB) (Repository, error) {
	switch driver {
	case "postgres":
		return NewPostgresRepository(db), nil
	case "sqlite":
		return NewSQLiteRepository(db), nil
	default:
		return nil, fmt.Errorf("no user repository for driver %q", driver)
	}
}
