// Package awsutil replays canned request/response cycles for tests
// that stand in for the AWS api with an httptest server.
package awsutil

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
)

type Request struct {
	Method    string
	Path      string
	Operation string
	Body      string
}

type Response struct {
	StatusCode int
	Body       string
}

type Cycle struct {
	Request  Request
	Response Response
}

// NewHandler returns an http handler that serves the cycles in order.
// Request bodies are form-decoded and matched as a subset, so a test
// can pin the parameters it cares about without embedding full
// templates.
func NewHandler(cycles []Cycle) http.HandlerFunc {
	i := 0

	return func(w http.ResponseWriter, r *http.Request) {
		if i >= len(cycles) {
			http.Error(w, fmt.Sprintf("no cycle for request: %s %s", r.Method, r.URL.Path), 500)
			return
		}

		c := cycles[i]
		i++

		body, err := ioutil.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		if err := match(c.Request, r, body); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		w.WriteHeader(c.Response.StatusCode)
		fmt.Fprint(w, c.Response.Body)
	}
}

func match(want Request, r *http.Request, body []byte) error {
	if want.Method != "" && want.Method != r.Method {
		return fmt.Errorf("method mismatch: %s != %s", r.Method, want.Method)
	}

	if want.Path != "" && want.Path != r.URL.Path {
		return fmt.Errorf("path mismatch: %s != %s", r.URL.Path, want.Path)
	}

	if want.Operation != "" && want.Operation != r.Header.Get("X-Amz-Target") {
		return fmt.Errorf("operation mismatch: %s != %s", r.Header.Get("X-Amz-Target"), want.Operation)
	}

	if want.Body != "" {
		wv, err := url.ParseQuery(want.Body)
		if err != nil {
			return err
		}

		gv, err := url.ParseQuery(string(body))
		if err != nil {
			return err
		}

		for k := range wv {
			if gv.Get(k) != wv.Get(k) {
				return fmt.Errorf("body mismatch: %s: %q != %q", k, gv.Get(k), wv.Get(k))
			}
		}
	}

	return nil
}
