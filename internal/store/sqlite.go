package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements the Store interface using SQLite.
// Tasks keep their insertion order through the autoincrement id: no row
// is ever deleted, so id order is insertion order.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store with the given database path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AddTask implements Store.
func (s *SQLiteStore) AddTask(ctx context.Context, description string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (description, completed) VALUES (?, FALSE)
	`, description)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	return nil
}

// ListTasks implements Store.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]string, error) {
	tasks, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return displayStrings(tasks), nil
}

// Snapshot implements Store.
func (s *SQLiteStore) Snapshot(ctx context.Context) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT description, completed FROM tasks ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.Description, &task.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// MarkCompleted implements Store. The index is resolved to a row through
// its position in id order; an offset past the last row selects nothing
// and the update is a no-op. Negative indexes are rejected up front
// because SQLite treats a negative OFFSET as zero.
func (s *SQLiteStore) MarkCompleted(ctx context.Context, index int) error {
	if index < 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET completed = TRUE
		WHERE id = (SELECT id FROM tasks ORDER BY id ASC LIMIT 1 OFFSET ?)
	`, index)
	if err != nil {
		return fmt.Errorf("failed to mark task completed: %w", err)
	}
	return nil
}
