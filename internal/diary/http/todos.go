package http

import (
	"net/http"
	"strconv"

	"github.com/mydayhq/myday/internal/diary/service"
	"github.com/mydayhq/myday/pkg/httpx"
	"github.com/mydayhq/myday/pkg/slogx"
)

type TodosHandler struct {
	TodoService *service.TodoService
}

type createTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type updateStatusResponse struct {
	Message       string `json:"message"`
	Status        string `json:"status"`
	StatusDisplay string `json:"status_display"`
}

// HandleCreate stores a new todo.
//
//	@Summary		Create a todo
//	@Description	Creates a time-boxed todo. Times are RFC 3339 and start must precede end. New todos begin as not_started.
//	@Tags			Todos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createTodoRequest	true	"Todo fields"
//	@Success		201		{object}	TodoView
//	@Failure		400		{object}	apiError	"Missing title, bad timestamps, or start not before end"
//	@Router			/v1/todos [post].
func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		errUnauthorized.WriteError(w)
		return
	}

	var req createTodoRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		errBadBody.WriteError(w)
		return
	}

	t, err := h.TodoService.Create(ctx, userID, service.CreateTodoParams{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("todo created", "todo_id", t.ID)

	httpx.WriteJSON(w, http.StatusCreated, toTodoView(t))
}

// HandleList returns the user's todos, optionally filtered to one day.
//
//	@Summary		List todos
//	@Description	Returns the user's todos ordered by start time descending. An optional date filters to todos starting on that UTC day.
//	@Tags			Todos
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	false	"Calendar date filter (YYYY-MM-DD)"
//	@Success		200		{array}		TodoView
//	@Failure		400		{object}	apiError	"Malformed date"
//	@Router			/v1/todos [get].
func (h *TodosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		errUnauthorized.WriteError(w)
		return
	}

	todos, err := h.TodoService.List(ctx, userID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTodoViews(todos))
}

// HandleUpdateStatus flips a todo's completion state.
//
//	@Summary		Set todo completion
//	@Description	The {completed} segment is parsed as a boolean: true marks the todo completed, false resets it to not_started. Idempotent.
//	@Tags			Todos
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id			path		string	true	"Todo ID"
//	@Param			completed	path		string	true	"true or false"
//	@Success		200			{object}	updateStatusResponse
//	@Failure		404			{object}	apiError	"Todo missing or owned by another user"
//	@Router			/v1/todos/{id}/{completed} [patch].
func (h *TodosHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		errUnauthorized.WriteError(w)
		return
	}

	completed, err := strconv.ParseBool(r.PathValue("completed"))
	if err != nil {
		(&apiError{http.StatusBadRequest, "invalid_request", "Completed must be true or false."}).WriteError(w)
		return
	}

	t, err := h.TodoService.SetCompleted(ctx, userID, r.PathValue("id"), completed)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, updateStatusResponse{
		Message:       "Todo updated.",
		Status:        string(t.Status),
		StatusDisplay: t.Status.Display(),
	})
}

// HandleDelete removes a todo.
//
//	@Summary		Delete a todo
//	@Description	Removes the todo when owned by the authenticated user.
//	@Tags			Todos
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Todo ID"
//	@Success		204
//	@Failure		404	{object}	apiError	"Todo missing or owned by another user"
//	@Router			/v1/todos/{id} [delete].
func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		errUnauthorized.WriteError(w)
		return
	}

	if err := h.TodoService.Delete(ctx, userID, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
