package tava_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

func TestGetCalendarEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/calendar/events", r.URL.Path)
			assert.Equal(t, "2024-04-01", r.URL.Query().Get("start"))
			assert.Equal(t, "2024-06-30", r.URL.Query().Get("end"))
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			w.Header().Set("Content-Type", "application/json")
			//nolint:errcheck //test server
			w.Write([]byte(`{
				"events": [
					{
						"id": "task-1",
						"type": "task",
						"title": "Task A",
						"start": "2024-05-10",
						"all_day": true
					}
				],
				"jira_connected": true
			}`))
		},
	))
	defer srv.Close()

	client := tava.New(srv.URL).WithToken("token")

	response, err := client.GetCalendarEvents(
		context.Background(),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	assert.True(t, response.JiraConnected)
	require.Len(t, response.Events, 1)
	assert.Equal(t, "task-1", response.Events[0].ID)
	assert.Equal(t, tava.EventTypeTask, response.Events[0].Type)
}

func TestCreateTaskSendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/calendar/tasks", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var payload tava.TaskPayload
			err := json.NewDecoder(r.Body).Decode(&payload)
			require.NoError(t, err)
			assert.Equal(t, "Write launch notes", payload.Title)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			//nolint:errcheck //test server
			w.Write([]byte(`{"id": "task-1", "title": "Write launch notes"}`))
		},
	))
	defer srv.Close()

	client := tava.New(srv.URL)

	//nolint:exhaustruct //other fields are optional
	task, err := client.CreateTask(context.Background(), tava.TaskPayload{
		Title: "Write launch notes",
	})

	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID)
}

func TestDeleteTaskEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/calendar/tasks/task-1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		},
	))
	defer srv.Close()

	client := tava.New(srv.URL)

	err := client.DeleteTask(context.Background(), "task-1")
	require.NoError(t, err)
}

func TestErrorResponseMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			//nolint:errcheck //test server
			w.Write([]byte(`{"message": "end date before start date"}`))
		},
	))
	defer srv.Close()

	client := tava.New(srv.URL)

	//nolint:exhaustruct //other fields are optional
	_, err := client.CreateTimeOff(context.Background(), tava.TimeOffPayload{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "end date before start date")
	assert.Contains(t, err.Error(), "422")
}

func TestErrorResponseWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	))
	defer srv.Close()

	client := tava.New(srv.URL)

	_, err := client.GetEpics(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), http.StatusText(http.StatusInternalServerError))
}
