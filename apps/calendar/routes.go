package calendar

import (
	"fmt"
	"net/http"
)

func (app *Calendar) Routes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/events", prefix),
		app.services.Auth.Access(app.eventsHandler),
	)

	mux.HandleFunc(
		fmt.Sprintf("GET /%s/ws", prefix),
		app.services.WebSocket.Handler(),
	)

	app.tasksRoutes(prefix, mux)
	app.meetingsRoutes(prefix, mux)
}

func (app *Calendar) tasksRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("POST /%s/tasks", prefix),
		app.services.Auth.Access(app.createTaskHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/tasks/{id}", prefix),
		app.services.Auth.Access(app.getTaskHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("PUT /%s/tasks/{id}", prefix),
		app.services.Auth.Access(app.updateTaskHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("DELETE /%s/tasks/{id}", prefix),
		app.services.Auth.Access(app.deleteTaskHandler),
	)
}

func (app *Calendar) meetingsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("POST /%s/meetings", prefix),
		app.services.Auth.Access(app.createMeetingHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/meetings/{id}", prefix),
		app.services.Auth.Access(app.getMeetingHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("PUT /%s/meetings/{id}", prefix),
		app.services.Auth.Access(app.updateMeetingHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("DELETE /%s/meetings/{id}", prefix),
		app.services.Auth.Access(app.deleteMeetingHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST /%s/meetings/{id}/respond", prefix),
		app.services.Auth.Access(app.respondToMeetingHandler),
	)
}
