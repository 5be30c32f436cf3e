package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/contexttools"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/constants"
)

// proxyHandler forwards dashboard requests to the backend origin,
// swapping the session cookie for a bearer token. Anything not
// covered by a dedicated endpoint goes through here.
func (app *Application) proxyHandler(w http.ResponseWriter, r *http.Request) {
	token := contexttools.GetValue[string](
		r.Context(),
		constants.AccessTokenContextKey,
	)
	if token == nil {
		panic(errors.New("not signed in"))
	}

	path := strings.TrimPrefix(r.URL.Path, "/proxy")
	target := fmt.Sprintf("%s%s", app.config.BackendURL, path)
	if r.URL.RawQuery != "" {
		target = fmt.Sprintf("%s?%s", target, r.URL.RawQuery)
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	req.Header = r.Header.Clone()
	req.Header.Del("Cookie")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))

	resp, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		http.Error(w, "Backend unreachable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	copyHeader(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	//nolint:errcheck //response is already committed
	io.Copy(w, resp.Body)
}

func copyHeader(dst, src http.Header) {
	for k, v := range src {
		dst[k] = v
	}
}
