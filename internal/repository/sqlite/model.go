package sqlite

// Task is the row shape of the tasks table.
// CreatedAt holds the RFC3339Nano text written by FormatTimeForDB.
type Task struct {
	ID        int64
	Text      string
	Priority  string
	Category  string
	Completed bool
	CreatedAt string
}
