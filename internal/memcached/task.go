package memcached

import (
	"context"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"go.uber.org/zap"

	"github.com/sanLimbu/tasklist-api/internal"
)

//Task represents the cache-aside decorator wrapping the datastore handling Task records.
type Task struct {
	client     *memcache.Client
	orig       TaskStore
	expiration time.Duration
	logger     *zap.Logger
}

//TaskStore ...
type TaskStore interface {
	Create(ctx context.Context, params internal.CreateParams) (internal.Task, error)
	Delete(ctx context.Context, id int64) error
	Filter(ctx context.Context, params internal.ListParams) ([]internal.Task, error)
	Find(ctx context.Context, id int64) (internal.Task, error)
	Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error)
}

//NewTask instantiates the Task decorator
func NewTask(client *memcache.Client, orig TaskStore, logger *zap.Logger) *Task {
	return &Task{
		client:     client,
		orig:       orig,
		expiration: 15 * time.Minute,
		logger:     logger,
	}
}

//Create ...
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	task, err := t.orig.Create(ctx, params)
	if err != nil {
		return internal.Task{}, err
	}

	t.logger.Info("Create: setting value")

	setTask(ctx, t.client, newKey(task.ID), &task, t.expiration)

	return task, nil
}

//Delete ...
func (t *Task) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Task.Delete").End()

	if err := t.orig.Delete(ctx, id); err != nil {
		return err
	}

	deleteTask(ctx, t.client, newKey(id))

	return nil
}

//Filter is a passthrough, collections are not cached.
func (t *Task) Filter(ctx context.Context, params internal.ListParams) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Filter").End()

	return t.orig.Filter(ctx, params)
}

//Find ...
func (t *Task) Find(ctx context.Context, id int64) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	var res internal.Task

	if err := getTask(ctx, t.client, newKey(id), &res); err == nil {
		return res, nil
	}

	t.logger.Info("Find: not found, let's cache it")

	// Cache-Aside Caching

	res, err := t.orig.Find(ctx, id)
	if err != nil {
		return res, err
	}

	setTask(ctx, t.client, newKey(res.ID), &res, t.expiration)

	return res, nil
}

//Update ...
func (t *Task) Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Update").End()

	task, err := t.orig.Update(ctx, id, params)
	if err != nil {
		return internal.Task{}, err
	}

	t.logger.Info("Update: setting value")

	setTask(ctx, t.client, newKey(task.ID), &task, t.expiration)

	return task, nil
}

func newKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
