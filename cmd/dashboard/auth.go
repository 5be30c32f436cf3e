package main

import (
	"errors"
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/cmd/dashboard/internal/dtos"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/constants"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/models"
)

func (app *Application) authRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("POST /%s/auth/signin", prefix), app.signInHandler)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/auth/signout", prefix),
		app.services.Auth.Access(app.signOutHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/auth/me", prefix),
		app.services.Auth.Access(app.meHandler),
	)
}

func (app *Application) signInHandler(w http.ResponseWriter, r *http.Request) {
	var signInDto dtos.SignInDto

	err := httptools.ReadJSON(r.Body, &signInDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := signInDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	accessToken, refreshToken, err := app.services.Auth.SignInWithEmail(
		r.Context(),
		&signInDto,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	accessTokenCookie, err := app.services.Auth.CreateCookie(
		models.AccessScope,
		*accessToken,
		app.config.AccessExpiry,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	http.SetCookie(w, accessTokenCookie)

	if signInDto.RememberMe {
		var refreshTokenCookie *http.Cookie
		refreshTokenCookie, err = app.services.Auth.CreateCookie(
			models.RefreshScope,
			*refreshToken,
			app.config.RefreshExpiry,
		)
		if err != nil {
			httptools.HandleError(w, r, err)
			return
		}

		http.SetCookie(w, refreshTokenCookie)
	}

	user, err := app.services.Auth.GetUser(r.Context(), *accessToken)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, user)
}

func (app *Application) signOutHandler(w http.ResponseWriter, r *http.Request) {
	// the middleware stores the token even when the session was
	// refreshed and the access cookie itself was absent
	accessToken := contexttools.GetValue[string](
		r.Context(),
		constants.AccessTokenContextKey,
	)
	if accessToken == nil {
		panic(errors.New("not signed in"))
	}

	deleteAccessTokenCookie, deleteRefreshTokenCookie, err := app.services.Auth.SignOut(
		r.Context(),
		*accessToken,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	http.SetCookie(w, deleteAccessTokenCookie)
	http.SetCookie(w, deleteRefreshTokenCookie)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) meHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	app.writeJSON(w, http.StatusOK, user)
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any) {
	err := httptools.WriteJSON(w, status, data, nil)
	if err != nil {
		app.logger.Error("failed to write response", logging.ErrAttr(err))
	}
}
