package elasticsearch

import (
	"context"
	"time"

	"github.com/mercari/go-circuitbreaker"

	"github.com/sanLimbu/tasklist-api/internal"
)

//TaskSearcher wraps the Task repository to guard Search calls with a circuit breaker, the
//index cluster being down should not take the listing endpoints with it.
type TaskSearcher struct {
	cb   *circuitbreaker.CircuitBreaker
	orig *Task
}

//NewTaskSearcher instantiates the decorated Task repository
func NewTaskSearcher(orig *Task) *TaskSearcher {
	return &TaskSearcher{
		cb: circuitbreaker.New(
			circuitbreaker.WithOpenTimeout(time.Minute),
			circuitbreaker.WithTripFunc(circuitbreaker.NewTripFuncConsecutiveFailures(3)),
		),
		orig: orig,
	}
}

//Search ...
func (t *TaskSearcher) Search(ctx context.Context, params internal.SearchParams) (internal.SearchResults, error) {
	res, err := t.cb.Do(ctx, func() (interface{}, error) {
		return t.orig.Search(ctx, params)
	})
	if err != nil {
		return internal.SearchResults{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "cb.Do")
	}

	return res.(internal.SearchResults), nil
}
