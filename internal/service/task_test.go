package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/sanLimbu/tasklist-api/internal"
	"github.com/sanLimbu/tasklist-api/internal/service"
	"github.com/sanLimbu/tasklist-api/internal/service/servicetesting"
)

func newTestService() (*service.Task, *servicetesting.FakeTaskRepository, *servicetesting.FakeTaskSearchRepository, *servicetesting.FakeTaskMessageBrokerRepository) {
	repo := &servicetesting.FakeTaskRepository{}
	search := &servicetesting.FakeTaskSearchRepository{}
	msgBroker := &servicetesting.FakeTaskMessageBrokerRepository{}

	return service.NewTask(zap.NewNop(), repo, search, msgBroker), repo, search, msgBroker
}

func validCreateParams() internal.CreateParams {
	return internal.CreateParams{
		Title:       "Buy milk",
		Description: "2% or whole",
		Priority:    internal.PriorityLow,
		DueDate:     time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC),
	}
}

func TestTask_Create(t *testing.T) {
	t.Parallel()

	t.Run("OK: task stored and event published", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, msgBroker := newTestService()

		expected := internal.Task{ID: 1, Title: "Buy milk"}
		repo.CreateReturns(expected, nil)

		actual, err := svc.Create(context.Background(), validCreateParams())
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}

		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("unexpected task (-want +got):\n%s", diff)
		}

		if msgBroker.CreatedCallCount() != 1 {
			t.Fatalf("expected created event to be published")
		}
	})

	t.Run("ERR: invalid params never reach the repository", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, msgBroker := newTestService()

		params := validCreateParams()
		params.Title = ""

		_, err := svc.Create(context.Background(), params)

		var ierr *internal.Error
		if !errors.As(err, &ierr) || ierr.Code() != internal.ErrorCodeInvalidArgument {
			t.Fatalf("expected invalid argument code, got %v", err)
		}

		if repo.CreateCallCount() != 0 {
			t.Fatalf("expected repository not to be called")
		}

		if msgBroker.CreatedCallCount() != 0 {
			t.Fatalf("expected no event to be published")
		}
	})

	t.Run("OK: broker failure does not fail the request", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, msgBroker := newTestService()

		repo.CreateReturns(internal.Task{ID: 1}, nil)
		msgBroker.CreatedReturns(errors.New("broker down"))

		if _, err := svc.Create(context.Background(), validCreateParams()); err != nil {
			t.Fatalf("unexpected error %s", err)
		}
	})

	t.Run("ERR: repository failure", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, msgBroker := newTestService()

		repo.CreateReturns(internal.Task{}, errors.New("pgx failed"))

		if _, err := svc.Create(context.Background(), validCreateParams()); err == nil {
			t.Fatalf("expected error")
		}

		if msgBroker.CreatedCallCount() != 0 {
			t.Fatalf("expected no event to be published")
		}
	})
}

func TestTask_Delete(t *testing.T) {
	t.Parallel()

	t.Run("OK: event published", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, msgBroker := newTestService()

		if err := svc.Delete(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error %s", err)
		}

		_, id := repo.DeleteArgsForCall(0)
		if id != 1 {
			t.Fatalf("expected id 1, got %d", id)
		}

		if msgBroker.DeletedCallCount() != 1 {
			t.Fatalf("expected deleted event to be published")
		}
	})

	t.Run("ERR: not found code preserved", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, msgBroker := newTestService()

		repo.DeleteReturns(internal.NewErrorf(internal.ErrorCodeNotFound, "task not found"))

		err := svc.Delete(context.Background(), 404)

		var ierr *internal.Error
		if !errors.As(err, &ierr) || ierr.Code() != internal.ErrorCodeNotFound {
			t.Fatalf("expected not found code, got %v", err)
		}

		if msgBroker.DeletedCallCount() != 0 {
			t.Fatalf("expected no event to be published")
		}
	})
}

func TestTask_By(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newTestService()

	expected := []internal.Task{{ID: 1, Title: "Buy milk"}}
	repo.FilterReturns(expected, nil)

	completed := true

	actual, err := svc.By(context.Background(), internal.ListParams{Completed: &completed})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("unexpected tasks (-want +got):\n%s", diff)
	}

	_, params := repo.FilterArgsForCall(0)
	if params.Completed == nil || !*params.Completed {
		t.Fatalf("expected completed filter to be forwarded")
	}
}

func TestTask_Task(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, _ := newTestService()

		expected := internal.Task{ID: 1, Title: "Buy milk"}
		repo.FindReturns(expected, nil)

		actual, err := svc.Task(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}

		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("unexpected task (-want +got):\n%s", diff)
		}
	})

	t.Run("ERR: not found code preserved", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, _ := newTestService()

		repo.FindReturns(internal.Task{},
			internal.NewErrorf(internal.ErrorCodeNotFound, "task not found"))

		_, err := svc.Task(context.Background(), 404)

		var ierr *internal.Error
		if !errors.As(err, &ierr) || ierr.Code() != internal.ErrorCodeNotFound {
			t.Fatalf("expected not found code, got %v", err)
		}
	})
}

func TestTask_Update(t *testing.T) {
	t.Parallel()

	t.Run("OK: event published with updated record", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, msgBroker := newTestService()

		expected := internal.Task{ID: 1, Title: "Buy milk", Completed: true}
		repo.UpdateReturns(expected, nil)

		completed := true

		actual, err := svc.Update(context.Background(), 1, internal.UpdateParams{Completed: &completed})
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}

		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("unexpected task (-want +got):\n%s", diff)
		}

		_, task := msgBroker.UpdatedArgsForCall(0)
		if diff := cmp.Diff(expected, task); diff != "" {
			t.Fatalf("unexpected event payload (-want +got):\n%s", diff)
		}
	})

	t.Run("ERR: invalid params never reach the repository", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, _ := newTestService()

		title := ""

		_, err := svc.Update(context.Background(), 1, internal.UpdateParams{Title: &title})

		var ierr *internal.Error
		if !errors.As(err, &ierr) || ierr.Code() != internal.ErrorCodeInvalidArgument {
			t.Fatalf("expected invalid argument code, got %v", err)
		}

		if repo.UpdateCallCount() != 0 {
			t.Fatalf("expected repository not to be called")
		}
	})
}

func TestTask_Search(t *testing.T) {
	t.Parallel()

	svc, _, search, _ := newTestService()

	expected := internal.SearchResults{
		Tasks: []internal.Task{{ID: 1, Title: "Buy milk"}},
		Total: 1,
	}
	search.SearchReturns(expected, nil)

	text := "milk"

	actual, err := svc.Search(context.Background(), internal.SearchParams{Text: &text, Size: 10})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}
}
