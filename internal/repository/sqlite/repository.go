// Package sqlite stores tasks in a SQLite database through modernc.org/sqlite.
// The default DSN is ":memory:", so data lives only as long as the process.
package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"time-travel-tasks/internal/domain"
	"time-travel-tasks/internal/errors"
	"time-travel-tasks/internal/repository"
	"time-travel-tasks/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements repository.Repository on a SQLite database
type SQLiteRepository struct {
	db *sql.DB
}

var _ repository.Repository = (*SQLiteRepository)(nil)

// New opens the database at dsn and applies pending migrations.
func New(dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Every connection to ":memory:" is a separate database, so pin the pool
	// to a single connection that is never recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts the task and sets its ID from the AUTOINCREMENT key
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	row := FromDomainTask(task)
	query := `
	INSERT INTO tasks (text, priority, category, completed, created_at)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, row.Text, row.Priority, row.Category, row.Completed, row.CreatedAt)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	row, err := QuerySingle(ctx, r.db, query, ScanTask, id, id)
	if err != nil {
		return nil, err
	}

	task, err := ToDomainTask(row)
	if err != nil {
		return nil, errors.NewDatabaseError("decode task", err)
	}
	return task, nil
}

// ListTasks returns matching tasks in id order. Priority, category and
// completion are filtered in SQL; the text search runs on the decoded tasks
// so that case folding matches the in-memory backend.
func (r *SQLiteRepository) ListTasks(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, error) {
	var conditions []string
	var args []interface{}

	if filter.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, filter.Priority.String())
	}
	if filter.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *filter.Completed)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, args...)
	if err != nil {
		return nil, err
	}

	tasks, err := ToDomainTasks(rows)
	if err != nil {
		return nil, errors.NewDatabaseError("decode tasks", err)
	}

	out := tasks[:0]
	for _, task := range tasks {
		if filter.MatchesSearch(*task) {
			out = append(out, task)
		}
	}
	return out, nil
}

// CountTasks returns the number of stored tasks
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return count, nil
}

// UpdateTask overwrites every column of an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	row := FromDomainTask(task)
	query := `
	UPDATE tasks
	SET text = ?, priority = ?, category = ?, completed = ?, created_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, task.ID, row.Text, row.Priority, row.Category, row.Completed, row.CreatedAt, row.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, id, id)
}
