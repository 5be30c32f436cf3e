package calendar

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar/internal/dtos"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar/internal/services"
)

func (app *Calendar) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	var taskDto dtos.TaskDto

	err := httptools.ReadJSON(r.Body, &taskDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := taskDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	task, err := app.services.Calendar.CreateTask(r.Context(), taskDto.ToPayload())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.services.WebSocket.NotifyChanged(services.CalendarTopic)

	app.writeJSON(w, http.StatusCreated, task)
}

func (app *Calendar) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	task, err := app.services.Calendar.GetTask(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, task)
}

func (app *Calendar) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var taskDto dtos.TaskDto

	err = httptools.ReadJSON(r.Body, &taskDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := taskDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	task, err := app.services.Calendar.UpdateTask(r.Context(), id, taskDto.ToPayload())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.services.WebSocket.NotifyChanged(services.CalendarTopic)

	app.writeJSON(w, http.StatusOK, task)
}

func (app *Calendar) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	err = app.services.Calendar.DeleteTask(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.services.WebSocket.NotifyChanged(services.CalendarTopic)

	w.WriteHeader(http.StatusNoContent)
}
