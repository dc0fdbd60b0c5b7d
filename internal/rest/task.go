package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sanLimbu/tasklist-api/internal"
)

//go:generate counterfeiter -o resttesting/task_service.gen.go . TaskService

//TaskService ...
type TaskService interface {
	By(ctx context.Context, params internal.ListParams) ([]internal.Task, error)
	Create(ctx context.Context, params internal.CreateParams) (internal.Task, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, params internal.SearchParams) (internal.SearchResults, error)
	Task(ctx context.Context, id int64) (internal.Task, error)
	Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error)
}

//TaskHandler ...
type TaskHandler struct {
	svc TaskService
}

//NewTaskHandler
func NewTaskHandler(svc TaskService) *TaskHandler {
	return &TaskHandler{
		svc: svc,
	}
}

//Register connects the handlers to the router
func (t *TaskHandler) Register(r chi.Router) {
	r.Post("/tasks", t.create)
	r.Get("/tasks", t.list)
	r.Get("/tasks/{id}", t.task)
	r.Put("/tasks/{id}", t.update)
	r.Delete("/tasks/{id}", t.delete)
	r.Get("/search", t.search)
}

// Task is an activity that needs to be completed by its due date.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    int8     `json:"priority"`
	DueDate     DateTime `json:"due_date"`
	Completed   bool     `json:"completed"`
}

// CreateTaskRequest defines the request used for creating tasks.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    int8     `json:"priority"`
	DueDate     DateTime `json:"due_date"`
}

// UpdateTaskRequest defines the request used for updating a task, omitted fields keep their
// stored values.
type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Priority    *int8     `json:"priority"`
	DueDate     *DateTime `json:"due_date"`
	Completed   *bool     `json:"completed"`
}

// DeleteTaskResponse defines the confirmation returned after deleting a task.
type DeleteTaskResponse struct {
	Message string `json:"message"`
}

// SearchTasksResponse defines the response returned back after searching the task index.
type SearchTasksResponse struct {
	Tasks []Task `json:"tasks"`
	Total int64  `json:"total"`
}

func newTask(task internal.Task) Task {
	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    int8(task.Priority),
		DueDate:     DateTime(task.DueDate),
		Completed:   task.Completed,
	}
}

func (t *TaskHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	task, err := t.svc.Create(r.Context(), internal.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    internal.Priority(req.Priority),
		DueDate:     req.DueDate.Time(),
	})
	if err != nil {
		renderErrorResponse(r.Context(), w, "create failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusCreated)
}

func (t *TaskHandler) list(w http.ResponseWriter, r *http.Request) {
	params, err := newListParams(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid query", err)
		return
	}

	tasks, err := t.svc.By(r.Context(), params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "list failed", err)
		return
	}

	res := make([]Task, len(tasks))
	for i, task := range tasks {
		res[i] = newTask(task)
	}

	renderResponse(w, res, http.StatusOK)
}

func (t *TaskHandler) task(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	task, err := t.svc.Task(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "find failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusOK)
}

func (t *TaskHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	params := internal.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	if req.Priority != nil {
		priority := internal.Priority(*req.Priority)
		params.Priority = &priority
	}

	if req.DueDate != nil {
		dueDate := req.DueDate.Time()
		params.DueDate = &dueDate
	}

	task, err := t.svc.Update(r.Context(), id, params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusOK)
}

func (t *TaskHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	if err := t.svc.Delete(r.Context(), id); err != nil {
		renderErrorResponse(r.Context(), w, "delete failed", err)
		return
	}

	renderResponse(w, &DeleteTaskResponse{Message: "Task deleted successfully."}, http.StatusOK)
}

func (t *TaskHandler) search(w http.ResponseWriter, r *http.Request) {
	params, err := newSearchParams(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid query", err)
		return
	}

	results, err := t.svc.Search(r.Context(), params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "search failed", err)
		return
	}

	tasks := make([]Task, len(results.Tasks))
	for i, task := range results.Tasks {
		tasks[i] = newTask(task)
	}

	renderResponse(w, &SearchTasksResponse{
		Tasks: tasks,
		Total: results.Total,
	}, http.StatusOK)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "strconv.ParseInt")
	}

	return id, nil
}

func newListParams(r *http.Request) (internal.ListParams, error) {
	var params internal.ListParams

	if v := r.URL.Query().Get("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			return internal.ListParams{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "completed")
		}

		params.Completed = &completed
	}

	if v := r.URL.Query().Get("priority"); v != "" {
		priority, err := strconv.ParseInt(v, 10, 8)
		if err != nil {
			return internal.ListParams{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "priority")
		}

		p := internal.Priority(priority)
		params.Priority = &p
	}

	return params, nil
}

func newSearchParams(r *http.Request) (internal.SearchParams, error) {
	var params internal.SearchParams

	query := r.URL.Query()

	if v := query.Get("text"); v != "" {
		params.Text = &v
	}

	if v := query.Get("priority"); v != "" {
		priority, err := strconv.ParseInt(v, 10, 8)
		if err != nil {
			return internal.SearchParams{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "priority")
		}

		p := internal.Priority(priority)
		params.Priority = &p
	}

	if v := query.Get("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			return internal.SearchParams{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "completed")
		}

		params.Completed = &completed
	}

	if v := query.Get("from"); v != "" {
		from, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return internal.SearchParams{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "from")
		}

		params.From = from
	}

	params.Size = 10
	if v := query.Get("size"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return internal.SearchParams{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "size")
		}

		params.Size = size
	}

	return params, nil
}
