package http

import (
	"net/http"

	"github.com/mydayhq/myday/internal/diary/service"
	"github.com/mydayhq/myday/pkg/httpx"
	"github.com/mydayhq/myday/pkg/slogx"
)

type DiariesHandler struct {
	DiaryService *service.DiaryService
}

type createDiaryRequest struct {
	Text string `json:"text"`
}

// matchPathUser returns the authenticated user ID when it matches the user_id
// path segment. Entries of other users look like they do not exist, so a
// mismatch reports not found rather than forbidden.
func matchPathUser(w http.ResponseWriter, r *http.Request, seg string) (string, bool) {
	userID := httpx.UserIDFromCtx(r.Context())
	if userID == "" {
		errUnauthorized.WriteError(w)
		return "", false
	}
	if seg != userID {
		(&apiError{http.StatusNotFound, "not_found", "User not found."}).WriteError(w)
		return "", false
	}
	return userID, true
}

// HandleCreate writes today's diary entry.
//
//	@Summary		Create today's diary entry
//	@Description	Stores a free-text entry for the current date. One entry per user per day.
//	@Tags			Diaries
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string				true	"Owner user ID, must match the token subject"
//	@Param			body	body		createDiaryRequest	true	"Entry text"
//	@Success		201		{object}	DiaryView
//	@Failure		400		{object}	apiError	"Empty text or an entry already exists for today"
//	@Failure		404		{object}	apiError	"Path user does not match the token subject"
//	@Router			/v1/diaries/{user_id} [post].
func (h *DiariesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := matchPathUser(w, r, r.PathValue("user_id"))
	if !ok {
		return
	}

	var req createDiaryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		errBadBody.WriteError(w)
		return
	}

	d, err := h.DiaryService.Create(ctx, userID, req.Text)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("diary entry created", "diary_id", d.ID, "pub_date", d.PubDate)

	httpx.WriteJSON(w, http.StatusCreated, toDiaryView(d, nil))
}

// HandleList returns all of the user's entries, newest first, with todos.
//
//	@Summary		List diary entries
//	@Description	Returns every entry for the user, newest date first, each with the todos starting on its date.
//	@Tags			Diaries
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	path		string	true	"Owner user ID, must match the token subject"
//	@Success		200		{array}		DiaryView
//	@Failure		404		{object}	apiError	"Path user does not match the token subject"
//	@Router			/v1/diaries/{user_id} [get].
func (h *DiariesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := matchPathUser(w, r, r.PathValue("user_id"))
	if !ok {
		return
	}

	entries, err := h.DiaryService.List(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toDiaryViews(entries))
}

// HandleSub routes the two-segment diary GETs. "today/{user_id}" and
// "{diary_id}/todos" overlap for ServeMux with neither pattern more specific,
// so both are registered as one pattern and told apart here. "today" wins
// since it can never be a ULID.
func (h *DiariesHandler) HandleSub(w http.ResponseWriter, r *http.Request) {
	first, second := r.PathValue("first"), r.PathValue("second")

	switch {
	case first == "today":
		h.handleToday(w, r, second)
	case second == "todos":
		h.handleDiaryTodos(w, r, first)
	default:
		(&apiError{http.StatusNotFound, "not_found", "Not found."}).WriteError(w)
	}
}

// handleToday returns the entry for the current date.
//
//	@Summary		Get today's diary entry
//	@Description	Returns the user's entry for the current date with its todos.
//	@Tags			Diaries
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	path		string	true	"Owner user ID, must match the token subject"
//	@Success		200		{object}	DiaryView
//	@Failure		404		{object}	apiError	"No entry today, or path user mismatch"
//	@Router			/v1/diaries/today/{user_id} [get].
func (h *DiariesHandler) handleToday(w http.ResponseWriter, r *http.Request, userSeg string) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := matchPathUser(w, r, userSeg)
	if !ok {
		return
	}

	entry, err := h.DiaryService.GetToday(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toDiaryView(entry.Diary, entry.Todos))
}

// handleDiaryTodos returns the todos shown beside a diary entry.
//
//	@Summary		List a diary entry's todos
//	@Description	Returns the owner's todos whose start time falls on the entry's date.
//	@Tags			Diaries
//	@Security		BearerAuth
//	@Produce		json
//	@Param			diary_id	path		string	true	"Diary entry ID"
//	@Success		200			{array}		TodoView
//	@Failure		404			{object}	apiError	"Entry missing or owned by another user"
//	@Router			/v1/diaries/{diary_id}/todos [get].
func (h *DiariesHandler) handleDiaryTodos(w http.ResponseWriter, r *http.Request, diaryID string) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		errUnauthorized.WriteError(w)
		return
	}

	todos, err := h.DiaryService.ListTodosForDiary(ctx, userID, diaryID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTodoViews(todos))
}
