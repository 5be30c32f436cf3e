package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type TaskDto struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      *tava.TaskStatus `json:"status"`
	AssigneeIDs []string         `json:"assigneeIds"`
	DueDate     *tava.Date       `json:"dueDate"`
	Recurrence  *RecurrenceDto   `json:"recurrence"`
}

// RecurrenceDto is accepted as creation input and passed through
// untouched; expanding it into occurrences is backend work.
type RecurrenceDto struct {
	Frequency tava.RecurrenceFrequency `json:"frequency"`
	Interval  int                      `json:"interval"`
	EndDate   *tava.Date               `json:"endDate"`
}

func (dto *TaskDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "title", dto.Title, validate.IsNotEmpty)

	if dto.Status != nil {
		validate.Check(v, "status", *dto.Status, validate.IsInSlice(
			[]tava.TaskStatus{
				tava.TaskStatusTodo,
				tava.TaskStatusInProgress,
				tava.TaskStatusDone,
			},
		))
	}

	if dto.Recurrence != nil {
		dto.Recurrence.validate(v)
	}

	return v.Valid(), v.Errors()
}

func (dto *RecurrenceDto) validate(v *validate.Validator) {
	validate.Check(v, "recurrence.frequency", dto.Frequency, validate.IsInSlice(
		[]tava.RecurrenceFrequency{
			tava.RecurrenceDaily,
			tava.RecurrenceWeekly,
			tava.RecurrenceMonthly,
		},
	))
}

func (dto *TaskDto) ToPayload() tava.TaskPayload {
	payload := tava.TaskPayload{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      dto.Status,
		AssigneeIDs: dto.AssigneeIDs,
		DueDate:     dto.DueDate,
		Recurrence:  nil,
	}

	if dto.Recurrence != nil {
		payload.Recurrence = &tava.Recurrence{
			Frequency: dto.Recurrence.Frequency,
			Interval:  dto.Recurrence.Interval,
			EndDate:   dto.Recurrence.EndDate,
		}
	}

	return payload
}
