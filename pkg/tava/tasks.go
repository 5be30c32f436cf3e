package tava

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const TasksEndpoint = "calendar/tasks"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	AssigneeIDs []string   `json:"assignee_ids"`
	DueDate     *Date      `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RecurrenceFrequency values accepted by the backend. Expansion of a
// recurrence into occurrences happens backend-side.
type RecurrenceFrequency string

const (
	RecurrenceDaily   RecurrenceFrequency = "daily"
	RecurrenceWeekly  RecurrenceFrequency = "weekly"
	RecurrenceMonthly RecurrenceFrequency = "monthly"
)

type Recurrence struct {
	Frequency RecurrenceFrequency `json:"frequency"`
	Interval  int                 `json:"interval"`
	EndDate   *Date               `json:"end_date,omitempty"`
}

type TaskPayload struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
	AssigneeIDs []string    `json:"assignee_ids,omitempty"`
	DueDate     *Date       `json:"due_date,omitempty"`
	Recurrence  *Recurrence `json:"recurrence,omitempty"`
}

func (client client) CreateTask(
	ctx context.Context,
	payload TaskPayload,
) (*Task, error) {
	var task *Task
	err := client.sendRequest(
		ctx,
		http.MethodPost,
		TasksEndpoint,
		"",
		payload,
		&task,
	)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (client client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	endpoint := fmt.Sprintf("%s/%s", TasksEndpoint, taskID)

	var task *Task
	err := client.sendRequest(ctx, http.MethodGet, endpoint, "", nil, &task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (client client) UpdateTask(
	ctx context.Context,
	taskID string,
	payload TaskPayload,
) (*Task, error) {
	endpoint := fmt.Sprintf("%s/%s", TasksEndpoint, taskID)

	var task *Task
	err := client.sendRequest(ctx, http.MethodPut, endpoint, "", payload, &task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (client client) DeleteTask(ctx context.Context, taskID string) error {
	endpoint := fmt.Sprintf("%s/%s", TasksEndpoint, taskID)
	return client.sendRequest(ctx, http.MethodDelete, endpoint, "", nil, nil)
}
