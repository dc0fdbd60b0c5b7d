package internal

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

//Priority indicates how important a Task is, ranging from 1 (highest) to 3 (lowest).
type Priority int8

const (
	//PriorityHigh ...
	PriorityHigh Priority = iota + 1
	//PriorityMedium ...
	PriorityMedium
	//PriorityLow ...
	PriorityLow
)

//Validate ...
func (p Priority) Validate() error {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return nil
	}

	return NewErrorf(ErrorCodeInvalidArgument, "unknown priority value %d", p)
}

// Task is an activity that needs to be completed by its due date.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
	DueDate     time.Time
	Completed   bool
}

//Validate ...
func (t Task) Validate() error {
	if err := t.Priority.Validate(); err != nil {
		return err
	}

	if err := validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required),
		validation.Field(&t.DueDate, validation.Required),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "validation.ValidateStruct")
	}

	return nil
}

// CreateParams defines the values required for creating a new Task, all fields are required.
type CreateParams struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     time.Time
}

//Validate ...
func (c CreateParams) Validate() error {
	task := Task{
		Title:       c.Title,
		Description: c.Description,
		Priority:    c.Priority,
		DueDate:     c.DueDate,
	}

	return task.Validate()
}

// UpdateParams defines a partial Task update, nil fields keep their stored values.
type UpdateParams struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *time.Time
	Completed   *bool
}

//Validate ...
func (u UpdateParams) Validate() error {
	if u.Priority != nil {
		if err := u.Priority.Validate(); err != nil {
			return err
		}
	}

	if err := validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.NilOrNotEmpty),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "validation.ValidateStruct")
	}

	return nil
}

//IsZero indicates whether the update changes anything at all.
func (u UpdateParams) IsZero() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.Priority == nil &&
		u.DueDate == nil &&
		u.Completed == nil
}

// ListParams defines the filters used when listing Tasks, nil fields match every record.
type ListParams struct {
	Completed *bool
	Priority  *Priority
}

// SearchParams defines the full text search arguments used when searching indexed Tasks.
type SearchParams struct {
	Text      *string
	Priority  *Priority
	Completed *bool
	From      int64
	Size      int64
}

//IsZero determines whether the search arguments have values or not.
func (s SearchParams) IsZero() bool {
	return s.Text == nil && s.Priority == nil && s.Completed == nil
}

// SearchResults defines the collection of Tasks returned when searching.
type SearchResults struct {
	Tasks []Task
	Total int64
}
