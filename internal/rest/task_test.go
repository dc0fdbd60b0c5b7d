package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/sanLimbu/tasklist-api/internal"
	"github.com/sanLimbu/tasklist-api/internal/rest"
	"github.com/sanLimbu/tasklist-api/internal/rest/resttesting"
)

func TestTasks_Create(t *testing.T) {
	t.Parallel()

	dueDate := time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC)

	type output struct {
		expectedStatus int
		expected       interface{}
		target         interface{}
	}

	tests := []struct {
		name   string
		setup  func(*resttesting.FakeTaskService)
		input  []byte
		output output
	}{
		{
			"OK: 201",
			func(s *resttesting.FakeTaskService) {
				s.CreateReturns(
					internal.Task{
						ID:          1,
						Title:       "Buy milk",
						Description: "2% or whole",
						Priority:    internal.PriorityLow,
						DueDate:     dueDate,
					},
					nil)
			},
			[]byte(`{"title":"Buy milk","description":"2% or whole","priority":3,"due_date":"2000-01-30T15:00:00"}`),
			output{
				http.StatusCreated,
				&rest.Task{
					ID:          1,
					Title:       "Buy milk",
					Description: "2% or whole",
					Priority:    3,
					DueDate:     rest.DateTime(dueDate),
				},
				&rest.Task{},
			},
		},
		{
			"ERR: 400 invalid json",
			func(*resttesting.FakeTaskService) {},
			[]byte(`{"title":`),
			output{
				http.StatusBadRequest,
				&struct{}{},
				&struct{}{},
			},
		},
		{
			"ERR: 400 validation failed",
			func(s *resttesting.FakeTaskService) {
				s.CreateReturns(internal.Task{},
					internal.NewErrorf(internal.ErrorCodeInvalidArgument, "title is required"))
			},
			[]byte(`{"description":"no title","priority":3,"due_date":"2000-01-30T15:00:00"}`),
			output{
				http.StatusBadRequest,
				&struct{}{},
				&struct{}{},
			},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := chi.NewRouter()
			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			rest.NewTaskHandler(svc).Register(router)

			res := doRequest(router,
				httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(tt.input)))

			assertResponse(t, res, test{tt.output.expected, tt.output.target}, tt.output.expectedStatus)
		})
	}
}

func TestTasks_Read(t *testing.T) {
	t.Parallel()

	dueDate := time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC)

	type output struct {
		expectedStatus int
		expected       interface{}
		target         interface{}
	}

	tests := []struct {
		name   string
		setup  func(*resttesting.FakeTaskService)
		output output
	}{
		{
			"OK: 200",
			func(s *resttesting.FakeTaskService) {
				s.TaskReturns(
					internal.Task{
						ID:        1,
						Title:     "Buy milk",
						Priority:  internal.PriorityHigh,
						DueDate:   dueDate,
						Completed: true,
					},
					nil)
			},
			output{
				http.StatusOK,
				&rest.Task{
					ID:        1,
					Title:     "Buy milk",
					Priority:  1,
					DueDate:   rest.DateTime(dueDate),
					Completed: true,
				},
				&rest.Task{},
			},
		},
		{
			"ERR: 404 not found",
			func(s *resttesting.FakeTaskService) {
				s.TaskReturns(internal.Task{},
					internal.NewErrorf(internal.ErrorCodeNotFound, "task not found"))
			},
			output{
				http.StatusNotFound,
				&map[string]interface{}{"detail": "Task not found."},
				&map[string]interface{}{},
			},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := chi.NewRouter()
			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			rest.NewTaskHandler(svc).Register(router)

			res := doRequest(router,
				httptest.NewRequest(http.MethodGet, "/tasks/1", nil))

			assertResponse(t, res, test{tt.output.expected, tt.output.target}, tt.output.expectedStatus)
		})
	}
}

func TestTasks_ReadInvalidID(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	svc := &resttesting.FakeTaskService{}

	rest.NewTaskHandler(svc).Register(router)

	res := doRequest(router,
		httptest.NewRequest(http.MethodGet, "/tasks/not-a-number", nil))

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", res.StatusCode)
	}

	if svc.TaskCallCount() != 0 {
		t.Fatalf("expected service not to be called")
	}
}

func TestTasks_List(t *testing.T) {
	t.Parallel()

	dueDate := time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC)

	t.Run("OK: 200 filters forwarded", func(t *testing.T) {
		t.Parallel()

		router := chi.NewRouter()
		svc := &resttesting.FakeTaskService{}
		svc.ByReturns([]internal.Task{
			{
				ID:       1,
				Title:    "Buy milk",
				Priority: internal.PriorityMedium,
				DueDate:  dueDate,
			},
		}, nil)

		rest.NewTaskHandler(svc).Register(router)

		res := doRequest(router,
			httptest.NewRequest(http.MethodGet, "/tasks?completed=false&priority=2", nil))

		var actual []rest.Task

		assertResponse(t, res, test{&[]rest.Task{
			{
				ID:       1,
				Title:    "Buy milk",
				Priority: 2,
				DueDate:  rest.DateTime(dueDate),
			},
		}, &actual}, http.StatusOK)

		_, params := svc.ByArgsForCall(0)

		completed := false
		priority := internal.PriorityMedium

		if diff := cmp.Diff(internal.ListParams{Completed: &completed, Priority: &priority}, params); diff != "" {
			t.Fatalf("unexpected params (-want +got):\n%s", diff)
		}
	})

	t.Run("OK: 200 no filters", func(t *testing.T) {
		t.Parallel()

		router := chi.NewRouter()
		svc := &resttesting.FakeTaskService{}
		svc.ByReturns([]internal.Task{}, nil)

		rest.NewTaskHandler(svc).Register(router)

		res := doRequest(router,
			httptest.NewRequest(http.MethodGet, "/tasks", nil))

		var actual []rest.Task

		assertResponse(t, res, test{&[]rest.Task{}, &actual}, http.StatusOK)

		_, params := svc.ByArgsForCall(0)

		if diff := cmp.Diff(internal.ListParams{}, params); diff != "" {
			t.Fatalf("unexpected params (-want +got):\n%s", diff)
		}
	})

	t.Run("ERR: 400 invalid completed", func(t *testing.T) {
		t.Parallel()

		router := chi.NewRouter()
		svc := &resttesting.FakeTaskService{}

		rest.NewTaskHandler(svc).Register(router)

		res := doRequest(router,
			httptest.NewRequest(http.MethodGet, "/tasks?completed=banana", nil))

		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", res.StatusCode)
		}
	})
}

func TestTasks_Update(t *testing.T) {
	t.Parallel()

	dueDate := time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC)

	type output struct {
		expectedStatus int
		expected       interface{}
		target         interface{}
	}

	tests := []struct {
		name   string
		setup  func(*resttesting.FakeTaskService)
		input  []byte
		output output
	}{
		{
			"OK: 200",
			func(s *resttesting.FakeTaskService) {
				s.UpdateReturns(
					internal.Task{
						ID:        1,
						Title:     "Buy milk and bread",
						Priority:  internal.PriorityHigh,
						DueDate:   dueDate,
						Completed: true,
					},
					nil)
			},
			[]byte(`{"title":"Buy milk and bread","priority":1,"completed":true}`),
			output{
				http.StatusOK,
				&rest.Task{
					ID:        1,
					Title:     "Buy milk and bread",
					Priority:  1,
					DueDate:   rest.DateTime(dueDate),
					Completed: true,
				},
				&rest.Task{},
			},
		},
		{
			"ERR: 404 not found",
			func(s *resttesting.FakeTaskService) {
				s.UpdateReturns(internal.Task{},
					internal.NewErrorf(internal.ErrorCodeNotFound, "task not found"))
			},
			[]byte(`{"completed":true}`),
			output{
				http.StatusNotFound,
				&map[string]interface{}{"detail": "Task not found."},
				&map[string]interface{}{},
			},
		},
		{
			"ERR: 400 invalid json",
			func(*resttesting.FakeTaskService) {},
			[]byte(`{"completed":`),
			output{
				http.StatusBadRequest,
				&struct{}{},
				&struct{}{},
			},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := chi.NewRouter()
			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			rest.NewTaskHandler(svc).Register(router)

			res := doRequest(router,
				httptest.NewRequest(http.MethodPut, "/tasks/1", bytes.NewReader(tt.input)))

			assertResponse(t, res, test{tt.output.expected, tt.output.target}, tt.output.expectedStatus)
		})
	}
}

func TestTasks_UpdatePartialParams(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	svc := &resttesting.FakeTaskService{}
	svc.UpdateReturns(internal.Task{ID: 1}, nil)

	rest.NewTaskHandler(svc).Register(router)

	doRequest(router,
		httptest.NewRequest(http.MethodPut, "/tasks/1",
			bytes.NewReader([]byte(`{"completed":true}`))))

	_, id, params := svc.UpdateArgsForCall(0)

	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	completed := true

	if diff := cmp.Diff(internal.UpdateParams{Completed: &completed}, params); diff != "" {
		t.Fatalf("unexpected params (-want +got):\n%s", diff)
	}
}

func TestTasks_Delete(t *testing.T) {
	t.Parallel()

	type output struct {
		expectedStatus int
		expected       interface{}
		target         interface{}
	}

	tests := []struct {
		name   string
		setup  func(*resttesting.FakeTaskService)
		output output
	}{
		{
			"OK: 200",
			func(*resttesting.FakeTaskService) {},
			output{
				http.StatusOK,
				&rest.DeleteTaskResponse{Message: "Task deleted successfully."},
				&rest.DeleteTaskResponse{},
			},
		},
		{
			"ERR: 404 not found",
			func(s *resttesting.FakeTaskService) {
				s.DeleteReturns(internal.NewErrorf(internal.ErrorCodeNotFound, "task not found"))
			},
			output{
				http.StatusNotFound,
				&map[string]interface{}{"detail": "Task not found."},
				&map[string]interface{}{},
			},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := chi.NewRouter()
			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			rest.NewTaskHandler(svc).Register(router)

			res := doRequest(router,
				httptest.NewRequest(http.MethodDelete, "/tasks/1", nil))

			assertResponse(t, res, test{tt.output.expected, tt.output.target}, tt.output.expectedStatus)
		})
	}
}

func TestTasks_Search(t *testing.T) {
	t.Parallel()

	dueDate := time.Date(2000, 1, 30, 15, 0, 0, 0, time.UTC)

	router := chi.NewRouter()
	svc := &resttesting.FakeTaskService{}
	svc.SearchReturns(internal.SearchResults{
		Tasks: []internal.Task{
			{
				ID:       1,
				Title:    "Buy milk",
				Priority: internal.PriorityLow,
				DueDate:  dueDate,
			},
		},
		Total: 1,
	}, nil)

	rest.NewTaskHandler(svc).Register(router)

	res := doRequest(router,
		httptest.NewRequest(http.MethodGet, "/search?text=milk&priority=3", nil))

	var actual rest.SearchTasksResponse

	assertResponse(t, res, test{&rest.SearchTasksResponse{
		Tasks: []rest.Task{
			{
				ID:       1,
				Title:    "Buy milk",
				Priority: 3,
				DueDate:  rest.DateTime(dueDate),
			},
		},
		Total: 1,
	}, &actual}, http.StatusOK)

	_, params := svc.SearchArgsForCall(0)

	text := "milk"
	priority := internal.PriorityLow

	if diff := cmp.Diff(internal.SearchParams{
		Text:     &text,
		Priority: &priority,
		Size:     10,
	}, params); diff != "" {
		t.Fatalf("unexpected params (-want +got):\n%s", diff)
	}
}

type test struct {
	expected interface{}
	target   interface{}
}

func doRequest(router *chi.Mux, req *http.Request) *http.Response {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req.WithContext(context.Background()))

	return rr.Result()
}

func assertResponse(t *testing.T, res *http.Response, test test, expectedStatus int) {
	t.Helper()

	if res.StatusCode != expectedStatus {
		t.Fatalf("expected status %d, got %d", expectedStatus, res.StatusCode)
	}

	if expectedStatus == http.StatusBadRequest || expectedStatus == http.StatusInternalServerError {
		return
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("couldn't read response body %s", err)
	}
	defer res.Body.Close()

	if err := json.Unmarshal(body, test.target); err != nil {
		t.Fatalf("couldn't unmarshal response %s", err)
	}

	opt := cmp.Comparer(func(a, b rest.DateTime) bool {
		return a.Time().Equal(b.Time())
	})

	if diff := cmp.Diff(test.expected, test.target, opt); diff != "" {
		t.Fatalf("unexpected response (-want +got):\n%s", diff)
	}
}
