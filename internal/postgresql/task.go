package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanLimbu/tasklist-api/internal"
	"github.com/sanLimbu/tasklist-api/internal/postgresql/db"
)

//Task represents the repository used for interacting with Task records.
type Task struct {
	pool *pgxpool.Pool
}

//NewTask instantiates the Task repository.
func NewTask(pool *pgxpool.Pool) *Task {
	return &Task{
		pool: pool,
	}
}

//Create inserts a new task record, tasks always start out not completed.
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	query := `
		INSERT INTO tasks (title, description, priority, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64

	if err := t.pool.QueryRow(ctx, query,
		params.Title,
		params.Description,
		int16(params.Priority),
		newTimestamp(params.DueDate),
	).Scan(&id); err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pool.QueryRow")
	}

	return internal.Task{
		ID:          id,
		Title:       params.Title,
		Description: params.Description,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
		Completed:   false,
	}, nil
}

//Delete removes the task record, deleting an id that does not exist reports not found.
func (t *Task) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Task.Delete").End()

	tag, err := t.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pool.Exec")
	}

	if tag.RowsAffected() == 0 {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "task not found")
	}

	return nil
}

//Filter returns the tasks matching every supplied criterion, nil criteria match all records.
func (t *Task) Filter(ctx context.Context, params internal.ListParams) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Filter").End()

	query := `
		SELECT id, title, description, priority, due_date, completed
		FROM tasks
		WHERE ($1::boolean IS NULL OR completed = $1) AND
		      ($2::smallint IS NULL OR priority = $2)`

	var priority *int16
	if params.Priority != nil {
		v := int16(*params.Priority)
		priority = &v
	}

	rows, err := t.pool.Query(ctx, query, params.Completed, priority)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pool.Query")
	}
	defer rows.Close()

	res := make([]internal.Task, 0)

	for rows.Next() {
		var record db.Task

		if err := rows.Scan(
			&record.ID,
			&record.Title,
			&record.Description,
			&record.Priority,
			&record.DueDate,
			&record.Completed,
		); err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "rows.Scan")
		}

		res = append(res, convertTask(record))
	}

	if err := rows.Err(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "rows.Err")
	}

	return res, nil
}

//Find returns the requested task by searching the id.
func (t *Task) Find(ctx context.Context, id int64) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	query := `
		SELECT id, title, description, priority, due_date, completed
		FROM tasks
		WHERE id = $1`

	var record db.Task

	err := t.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.Title,
		&record.Description,
		&record.Priority,
		&record.DueDate,
		&record.Completed,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "task not found")
	}

	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pool.QueryRow")
	}

	return convertTask(record), nil
}

//Update overwrites the supplied fields of an existing task and returns the stored record.
//The patch and the fetch run as one statement so concurrent updates are never interleaved.
func (t *Task) Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Update").End()

	query := `
		UPDATE tasks
		SET title       = COALESCE($2::varchar, title),
		    description = COALESCE($3::varchar, description),
		    priority    = COALESCE($4::smallint, priority),
		    due_date    = COALESCE($5::timestamp, due_date),
		    completed   = COALESCE($6::boolean, completed)
		WHERE id = $1
		RETURNING id, title, description, priority, due_date, completed`

	var priority *int16
	if params.Priority != nil {
		v := int16(*params.Priority)
		priority = &v
	}

	var record db.Task

	err := t.pool.QueryRow(ctx, query,
		id,
		params.Title,
		params.Description,
		priority,
		params.DueDate,
		params.Completed,
	).Scan(
		&record.ID,
		&record.Title,
		&record.Description,
		&record.Priority,
		&record.DueDate,
		&record.Completed,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "task not found")
	}

	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pool.QueryRow")
	}

	return convertTask(record), nil
}
