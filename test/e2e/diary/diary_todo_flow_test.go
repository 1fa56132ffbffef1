package diary_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDiaryFlow(t *testing.T) {
	ts := newTestServer(t)
	userID, tokens := registerAndLogin(t, ts, "alice@example.com", "alice", "password123")

	today := time.Now().UTC().Format("2006-01-02")

	var entry diaryResponse
	status := ts.doJSON(t, http.MethodPost, "/v1/diaries/"+userID, tokens.Access, map[string]string{
		"text": "Shipped the release.",
	}, &entry)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, entry.ID)
	require.Equal(t, userID, entry.UserID)
	require.Equal(t, today, entry.PubDate)
	require.Equal(t, "Shipped the release.", entry.Text)

	t.Run("one entry per day", func(t *testing.T) {
		var errResp errorResponse
		status := ts.doJSON(t, http.MethodPost, "/v1/diaries/"+userID, tokens.Access, map[string]string{
			"text": "Second entry.",
		}, &errResp)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "A diary entry already exists for today.", errResp.Message)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		var errResp errorResponse
		status := ts.doJSON(t, http.MethodPost, "/v1/diaries/"+userID, tokens.Access, map[string]string{
			"text": "   ",
		}, &errResp)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Diary text must not be empty.", errResp.Message)
	})

	t.Run("lists entries", func(t *testing.T) {
		var entries []diaryResponse
		status := ts.doJSON(t, http.MethodGet, "/v1/diaries/"+userID, tokens.Access, nil, &entries)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, entries, 1)
		require.Equal(t, entry.ID, entries[0].ID)
	})

	t.Run("returns today's entry", func(t *testing.T) {
		var got diaryResponse
		status := ts.doJSON(t, http.MethodGet, "/v1/diaries/today/"+userID, tokens.Access, nil, &got)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, entry.ID, got.ID)
		require.Equal(t, today, got.PubDate)
	})

	t.Run("path user must match the token subject", func(t *testing.T) {
		var errResp errorResponse
		status := ts.doJSON(t, http.MethodGet, "/v1/diaries/someone-else", tokens.Access, nil, &errResp)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "User not found.", errResp.Message)
	})

	t.Run("requires authentication", func(t *testing.T) {
		status := ts.doJSON(t, http.MethodGet, "/v1/diaries/"+userID, "", nil, nil)
		require.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestTodoFlow(t *testing.T) {
	ts := newTestServer(t)
	userID, tokens := registerAndLogin(t, ts, "bob@example.com", "bob", "password123")

	start := time.Now().UTC().Truncate(time.Hour)
	end := start.Add(time.Hour)

	var todo todoResponse
	status := ts.doJSON(t, http.MethodPost, "/v1/todos", tokens.Access, map[string]string{
		"title":       "Write report",
		"description": "Quarterly numbers",
		"start_time":  start.Format(time.RFC3339),
		"end_time":    end.Format(time.RFC3339),
	}, &todo)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, todo.ID)
	require.Equal(t, userID, todo.UserID)
	require.Equal(t, "not_started", todo.Status)
	require.Equal(t, "Not Started", todo.StatusDisplay)

	t.Run("rejects start after end", func(t *testing.T) {
		var errResp errorResponse
		status := ts.doJSON(t, http.MethodPost, "/v1/todos", tokens.Access, map[string]string{
			"title":      "Backwards",
			"start_time": end.Format(time.RFC3339),
			"end_time":   start.Format(time.RFC3339),
		}, &errResp)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Start time must be before end time", errResp.Message)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		var errResp errorResponse
		status := ts.doJSON(t, http.MethodPost, "/v1/todos", tokens.Access, map[string]string{
			"start_time": start.Format(time.RFC3339),
			"end_time":   end.Format(time.RFC3339),
		}, &errResp)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Title is required.", errResp.Message)
	})

	t.Run("lists todos", func(t *testing.T) {
		var todos []todoResponse
		status := ts.doJSON(t, http.MethodGet, "/v1/todos", tokens.Access, nil, &todos)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, todos, 1)
		require.Equal(t, todo.ID, todos[0].ID)
	})

	t.Run("filters todos by date", func(t *testing.T) {
		var todos []todoResponse
		status := ts.doJSON(t, http.MethodGet, "/v1/todos?date="+start.Format("2006-01-02"), tokens.Access, nil, &todos)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, todos, 1)

		status = ts.doJSON(t, http.MethodGet, "/v1/todos?date=1999-01-01", tokens.Access, nil, &todos)
		require.Equal(t, http.StatusOK, status)
		require.Empty(t, todos)
	})

	t.Run("rejects malformed date filter", func(t *testing.T) {
		var errResp errorResponse
		status := ts.doJSON(t, http.MethodGet, "/v1/todos?date=01-02-2026", tokens.Access, nil, &errResp)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Invalid date format. Use YYYY-MM-DD.", errResp.Message)
	})

	t.Run("marks completed and back", func(t *testing.T) {
		var out struct {
			Message       string `json:"message"`
			Status        string `json:"status"`
			StatusDisplay string `json:"status_display"`
		}
		status := ts.doJSON(t, http.MethodPatch, "/v1/todos/"+todo.ID+"/true", tokens.Access, nil, &out)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "Todo updated.", out.Message)
		require.Equal(t, "completed", out.Status)
		require.Equal(t, "Completed", out.StatusDisplay)

		status = ts.doJSON(t, http.MethodPatch, "/v1/todos/"+todo.ID+"/false", tokens.Access, nil, &out)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "not_started", out.Status)
	})

	t.Run("rejects a non-boolean completed segment", func(t *testing.T) {
		var errResp errorResponse
		status := ts.doJSON(t, http.MethodPatch, "/v1/todos/"+todo.ID+"/maybe", tokens.Access, nil, &errResp)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Completed must be true or false.", errResp.Message)
	})

	t.Run("deletes a todo", func(t *testing.T) {
		status := ts.doJSON(t, http.MethodDelete, "/v1/todos/"+todo.ID, tokens.Access, nil, nil)
		require.Equal(t, http.StatusNoContent, status)

		status = ts.doJSON(t, http.MethodDelete, "/v1/todos/"+todo.ID, tokens.Access, nil, nil)
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestDiaryTodosEndpoint(t *testing.T) {
	ts := newTestServer(t)
	userID, tokens := registerAndLogin(t, ts, "carol@example.com", "carol", "password123")

	var entry diaryResponse
	status := ts.doJSON(t, http.MethodPost, "/v1/diaries/"+userID, tokens.Access, map[string]string{
		"text": "Busy day ahead.",
	}, &entry)
	require.Equal(t, http.StatusCreated, status)

	// A todo starting today should show up beside the entry
	start := time.Now().UTC()
	var todo todoResponse
	status = ts.doJSON(t, http.MethodPost, "/v1/todos", tokens.Access, map[string]string{
		"title":      "Morning standup",
		"start_time": start.Format(time.RFC3339),
		"end_time":   start.Add(30 * time.Minute).Format(time.RFC3339),
	}, &todo)
	require.Equal(t, http.StatusCreated, status)

	var todos []todoResponse
	status = ts.doJSON(t, http.MethodGet, "/v1/diaries/"+entry.ID+"/todos", tokens.Access, nil, &todos)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, todos, 1)
	require.Equal(t, todo.ID, todos[0].ID)

	t.Run("today's entry includes the todo", func(t *testing.T) {
		var got diaryResponse
		status := ts.doJSON(t, http.MethodGet, "/v1/diaries/today/"+userID, tokens.Access, nil, &got)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, got.Todos, 1)
		require.Equal(t, todo.ID, got.Todos[0].ID)
	})

	t.Run("unknown diary id reports not found", func(t *testing.T) {
		status := ts.doJSON(t, http.MethodGet, "/v1/diaries/01ARZ3NDEKTSV4RRFFQ69G5FAV/todos", tokens.Access, nil, nil)
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestTodoOwnership(t *testing.T) {
	ts := newTestServer(t)
	_, owner := registerAndLogin(t, ts, "dana@example.com", "dana", "password123")
	_, intruder := registerAndLogin(t, ts, "eve@example.com", "eve", "password123")

	start := time.Now().UTC()
	var todo todoResponse
	status := ts.doJSON(t, http.MethodPost, "/v1/todos", owner.Access, map[string]string{
		"title":      "Private task",
		"start_time": start.Format(time.RFC3339),
		"end_time":   start.Add(time.Hour).Format(time.RFC3339),
	}, &todo)
	require.Equal(t, http.StatusCreated, status)

	t.Run("another user cannot see it", func(t *testing.T) {
		var todos []todoResponse
		status := ts.doJSON(t, http.MethodGet, "/v1/todos", intruder.Access, nil, &todos)
		require.Equal(t, http.StatusOK, status)
		require.Empty(t, todos)
	})

	t.Run("another user cannot update it", func(t *testing.T) {
		status := ts.doJSON(t, http.MethodPatch, "/v1/todos/"+todo.ID+"/true", intruder.Access, nil, nil)
		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("another user cannot delete it", func(t *testing.T) {
		status := ts.doJSON(t, http.MethodDelete, "/v1/todos/"+todo.ID, intruder.Access, nil, nil)
		require.Equal(t, http.StatusNotFound, status)

		// Still there for the owner
		var todos []todoResponse
		status = ts.doJSON(t, http.MethodGet, "/v1/todos", owner.Access, nil, &todos)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, todos, 1)
	})
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	var live struct {
		Status string `json:"status"`
	}
	status := ts.doJSON(t, http.MethodGet, "/livez", "", nil, &live)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", live.Status)

	var ready struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
			Signer   string `json:"signer"`
		} `json:"checks"`
	}
	status = ts.doJSON(t, http.MethodGet, "/readyz", "", nil, &ready)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)
}
