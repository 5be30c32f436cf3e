package timeoff

import (
	"errors"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/timeoff/internal/dtos"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/constants"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/models"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

const timeOffResource = "time_off"

func (app *TimeOff) currentUser(r *http.Request) models.User {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	return *user
}

func (app *TimeOff) listHandler(w http.ResponseWriter, r *http.Request) {
	user := app.currentUser(r)

	scope := tava.TimeOffScopeSelf
	if r.URL.Query().Get("scope") == string(tava.TimeOffScopeTeam) {
		if !user.CanViewTeam() {
			http.Error(
				w,
				"Team time off requires a supervisor or admin role",
				http.StatusForbidden,
			)
			return
		}
		scope = tava.TimeOffScopeTeam
	}

	requests, err := app.services.TimeOff.List(r.Context(), scope)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, requests)
}

func (app *TimeOff) createHandler(w http.ResponseWriter, r *http.Request) {
	var timeOffDto dtos.TimeOffDto

	err := httptools.ReadJSON(r.Body, &timeOffDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := timeOffDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	payload, err := timeOffDto.ToPayload()
	if err != nil {
		http.Error(w, "Invalid date", http.StatusBadRequest)
		return
	}

	request, err := app.services.TimeOff.Create(r.Context(), payload)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.onChange(timeOffResource)

	app.writeJSON(w, http.StatusCreated, request)
}

func (app *TimeOff) cancelHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	request, err := app.services.TimeOff.Cancel(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.onChange(timeOffResource)

	app.writeJSON(w, http.StatusOK, request)
}

func (app *TimeOff) reviewHandler(w http.ResponseWriter, r *http.Request) {
	user := app.currentUser(r)
	if !user.CanViewTeam() {
		http.Error(
			w,
			"Reviewing time off requires a supervisor or admin role",
			http.StatusForbidden,
		)
		return
	}

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var reviewDto dtos.ReviewDto

	err = httptools.ReadJSON(r.Body, &reviewDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := reviewDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	request, err := app.services.TimeOff.Review(r.Context(), id, reviewDto.Status)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.onChange(timeOffResource)

	app.writeJSON(w, http.StatusOK, request)
}
