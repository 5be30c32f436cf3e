package dtos

import (
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/validate"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

const dateFormat = "2006-01-02"

type TimeOffDto struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Note      string `json:"note"`
}

func (dto *TimeOffDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "startDate", dto.StartDate, validate.IsNotEmpty)
	validate.Check(v, "endDate", dto.EndDate, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}

func (dto *TimeOffDto) ToPayload() (tava.TimeOffPayload, error) {
	var payload tava.TimeOffPayload

	start, err := time.Parse(dateFormat, dto.StartDate)
	if err != nil {
		return payload, err
	}

	end, err := time.Parse(dateFormat, dto.EndDate)
	if err != nil {
		return payload, err
	}

	payload.StartDate = tava.Date{Time: start}
	payload.EndDate = tava.Date{Time: end}
	payload.Note = dto.Note

	return payload, nil
}

type ReviewDto struct {
	Status tava.TimeOffStatus `json:"status"`
}

func (dto *ReviewDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "status", dto.Status, validate.IsInSlice(
		[]tava.TimeOffStatus{
			tava.TimeOffApproved,
			tava.TimeOffDenied,
		},
	))

	return v.Valid(), v.Errors()
}
