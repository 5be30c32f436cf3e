package tava

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

type client struct {
	baseURL     string
	accessToken string
}

func New(baseURL string) Client {
	return client{
		baseURL:     baseURL,
		accessToken: "",
	}
}

func (client client) WithToken(accessToken string) Client {
	client.accessToken = accessToken
	return client
}

type errorResponse struct {
	Message string `json:"message"`
}

func (client client) sendRequest(
	ctx context.Context,
	method string,
	endpoint string,
	query string,
	body any,
	dst any,
) error {
	u, err := url.Parse(fmt.Sprintf("%s/%s", client.baseURL, endpoint))
	if err != nil {
		return err
	}

	u.RawQuery = query

	var req *http.Request
	if body != nil {
		var marshalled []byte
		marshalled, err = json.Marshal(body)
		if err != nil {
			return err
		}

		req, err = http.NewRequestWithContext(
			ctx,
			method,
			u.String(),
			bytes.NewBuffer(marshalled),
		)
		if err != nil {
			return err
		}

		req.Header.Add("Content-Type", "application/json")
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), nil)
		if err != nil {
			return err
		}
	}

	if client.accessToken != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", client.accessToken))
	}
	req.Header.Add("X-Request-ID", uuid.NewString())

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var errRes errorResponse
		_ = httptools.ReadJSON(res.Body, &errRes)

		if errRes.Message == "" {
			errRes.Message = http.StatusText(res.StatusCode)
		}

		return fmt.Errorf("backend returned %d: %s", res.StatusCode, errRes.Message)
	}

	if dst == nil {
		return nil
	}

	err = httptools.ReadJSON(res.Body, dst)
	if err != nil && err.Error() != "body must not be empty" {
		return err
	}

	return nil
}
