package calendar

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar/internal/dtos"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar/internal/services"
)

func (app *Calendar) createMeetingHandler(w http.ResponseWriter, r *http.Request) {
	var meetingDto dtos.MeetingDto

	err := httptools.ReadJSON(r.Body, &meetingDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := meetingDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	meeting, err := app.services.Calendar.CreateMeeting(
		r.Context(),
		meetingDto.ToPayload(),
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.services.WebSocket.NotifyChanged(services.CalendarTopic)

	app.writeJSON(w, http.StatusCreated, meeting)
}

func (app *Calendar) getMeetingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	meeting, err := app.services.Calendar.GetMeeting(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, meeting)
}

func (app *Calendar) updateMeetingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var meetingDto dtos.MeetingDto

	err = httptools.ReadJSON(r.Body, &meetingDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := meetingDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	meeting, err := app.services.Calendar.UpdateMeeting(
		r.Context(),
		id,
		meetingDto.ToPayload(),
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.services.WebSocket.NotifyChanged(services.CalendarTopic)

	app.writeJSON(w, http.StatusOK, meeting)
}

func (app *Calendar) deleteMeetingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	err = app.services.Calendar.DeleteMeeting(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.services.WebSocket.NotifyChanged(services.CalendarTopic)

	w.WriteHeader(http.StatusNoContent)
}

// respondToMeetingHandler records the caller's attendance response,
// a transition separate from editing the meeting itself.
func (app *Calendar) respondToMeetingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var responseDto dtos.MeetingResponseDto

	err = httptools.ReadJSON(r.Body, &responseDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := responseDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	meeting, err := app.services.Calendar.RespondToMeeting(
		r.Context(),
		id,
		responseDto.Response,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.services.WebSocket.NotifyChanged(services.CalendarTopic)

	app.writeJSON(w, http.StatusOK, meeting)
}
