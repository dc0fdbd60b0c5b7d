package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Task mirrors one row of the "tasks" table.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    int16
	DueDate     pgtype.Timestamp
	Completed   bool
}
