package tava

import (
	"context"
	"net/http"
)

const EpicsEndpoint = "jira/epics"

type Epic struct {
	Key       string `json:"key"`
	Summary   string `json:"summary"`
	URL       string `json:"url"`
	StartDate *Date  `json:"start_date"`
	DueDate   *Date  `json:"due_date"`
}

func (client client) GetEpics(ctx context.Context) ([]Epic, error) {
	var epics []Epic
	err := client.sendRequest(ctx, http.MethodGet, EpicsEndpoint, "", nil, &epics)
	if err != nil {
		return nil, err
	}

	return epics, nil
}
