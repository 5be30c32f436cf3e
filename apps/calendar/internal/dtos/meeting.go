package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type MeetingDto struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartsAt    tava.Timestamp `json:"startsAt"`
	EndsAt      tava.Timestamp `json:"endsAt"`
	AttendeeIDs []string       `json:"attendeeIds"`
	Recurrence  *RecurrenceDto `json:"recurrence"`
}

func (dto *MeetingDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "title", dto.Title, validate.IsNotEmpty)

	if dto.Recurrence != nil {
		dto.Recurrence.validate(v)
	}

	return v.Valid(), v.Errors()
}

func (dto *MeetingDto) ToPayload() tava.MeetingPayload {
	payload := tava.MeetingPayload{
		Title:       dto.Title,
		Description: dto.Description,
		StartsAt:    dto.StartsAt,
		EndsAt:      dto.EndsAt,
		AttendeeIDs: dto.AttendeeIDs,
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

type MeetingResponseDto struct {
	Response tava.AttendeeResponse `json:"response"`
}

func (dto *MeetingResponseDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "response", dto.Response, validate.IsInSlice(
		[]tava.AttendeeResponse{
			tava.ResponseAccepted,
			tava.ResponseDeclined,
			tava.ResponseTentative,
		},
	))

	return v.Valid(), v.Errors()
}
