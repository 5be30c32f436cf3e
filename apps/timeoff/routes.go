package timeoff

import (
	"fmt"
	"net/http"
)

func (app *TimeOff) Routes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s", prefix),
		app.services.Auth.Access(app.listHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST /%s", prefix),
		app.services.Auth.Access(app.createHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST /%s/{id}/cancel", prefix),
		app.services.Auth.Access(app.cancelHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST /%s/{id}/review", prefix),
		app.services.Auth.Access(app.reviewHandler),
	)
}
