package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/sanLimbu/tasklist-api/internal"
)

const otelName = "github.com/sanLimbu/tasklist-api/internal/service"

//go:generate counterfeiter -o servicetesting/task_repository.gen.go . TaskRepository
//go:generate counterfeiter -o servicetesting/task_search_repository.gen.go . TaskSearchRepository
//go:generate counterfeiter -o servicetesting/task_message_broker_repository.gen.go . TaskMessageBrokerRepository

//TaskRepository defines the datasource handling persisting Task records
type TaskRepository interface {
	Create(ctx context.Context, params internal.CreateParams) (internal.Task, error)
	Delete(ctx context.Context, id int64) error
	Filter(ctx context.Context, params internal.ListParams) ([]internal.Task, error)
	Find(ctx context.Context, id int64) (internal.Task, error)
	Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error)
}

//TaskSearchRepository defines the datastore handling searching Task records
type TaskSearchRepository interface {
	Search(ctx context.Context, params internal.SearchParams) (internal.SearchResults, error)
}

//TaskMessageBrokerRepository defines the datasource handling publication of Task events
type TaskMessageBrokerRepository interface {
	Created(ctx context.Context, task internal.Task) error
	Deleted(ctx context.Context, id int64) error
	Updated(ctx context.Context, task internal.Task) error
}

//Task defines the application service in charge of interacting with Tasks
type Task struct {
	logger    *zap.Logger
	repo      TaskRepository
	search    TaskSearchRepository
	msgBroker TaskMessageBrokerRepository
}

//NewTask
func NewTask(logger *zap.Logger, repo TaskRepository, search TaskSearchRepository, msgBroker TaskMessageBrokerRepository) *Task {
	return &Task{
		logger:    logger,
		repo:      repo,
		search:    search,
		msgBroker: msgBroker,
	}
}

// By returns the stored Tasks matching the received filters.
func (t *Task) By(ctx context.Context, params internal.ListParams) ([]internal.Task, error) {
	ctx, span := newOTELSpan(ctx, "Task.By")
	defer span.End()

	res, err := t.repo.Filter(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("repo filter: %w", err)
	}

	return res, nil
}

//Create validates and stores a new record, publishing an event on success.
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	ctx, span := newOTELSpan(ctx, "Task.Create")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Task{}, fmt.Errorf("params validate: %w", err)
	}

	task, err := t.repo.Create(ctx, params)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo create: %w", err)
	}

	if err := t.msgBroker.Created(ctx, task); err != nil {
		t.logger.Info("Create: broker publish failed", zap.Error(err))
	}

	return task, nil
}

//Delete removes an existing Task from the datastore, publishing an event on success.
func (t *Task) Delete(ctx context.Context, id int64) error {
	ctx, span := newOTELSpan(ctx, "Task.Delete")
	defer span.End()

	if err := t.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	if err := t.msgBroker.Deleted(ctx, id); err != nil {
		t.logger.Info("Delete: broker publish failed", zap.Error(err))
	}

	return nil
}

// Search returns indexed Tasks matching the received values.
func (t *Task) Search(ctx context.Context, params internal.SearchParams) (internal.SearchResults, error) {
	ctx, span := newOTELSpan(ctx, "Task.Search")
	defer span.End()

	res, err := t.search.Search(ctx, params)
	if err != nil {
		return internal.SearchResults{}, fmt.Errorf("search: %w", err)
	}

	return res, nil
}

// Task gets an existing Task from the datastore.
func (t *Task) Task(ctx context.Context, id int64) (internal.Task, error) {
	ctx, span := newOTELSpan(ctx, "Task.Task")
	defer span.End()

	task, err := t.repo.Find(ctx, id)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo find: %w", err)
	}

	return task, nil
}

// Update validates and applies a partial update to an existing Task, publishing an event on success.
func (t *Task) Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error) {
	ctx, span := newOTELSpan(ctx, "Task.Update")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Task{}, fmt.Errorf("params validate: %w", err)
	}

	task, err := t.repo.Update(ctx, id, params)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo update: %w", err)
	}

	if err := t.msgBroker.Updated(ctx, task); err != nil {
		t.logger.Info("Update: broker publish failed", zap.Error(err))
	}

	return task, nil
}

func newOTELSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(otelName).Start(ctx, name)
}
