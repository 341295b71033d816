package accounts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/uuid"
)

// loggingTransport logs every round trip.
type loggingTransport struct {
	base http.RoundTripper
}

func logging(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if _, ok := base.(*loggingTransport); ok {
		return base
	}
	return &loggingTransport{base: base}
}

// RequestIDHeader identifies a request in the client and server logs.
const RequestIDHeader = "X-Request-Id"

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := req.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
		req = req.Clone(req.Context())
		req.Header.Set(RequestIDHeader, id)
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Printf("%v %v%v %v [%v]", req.Method, req.URL.Host, req.URL.Path, err, id)
		return nil, err
	}
	log.Printf("%v %v%v %v [%v]", req.Method, req.URL.Host, req.URL.Path, resp.Status, id)
	return resp, nil
}

// jwdo performs the request and returns the JSON body of the response.
//
// The body must be valid JSON, must not carry an "error" field and the status
// must be 2xx, otherwise an *Error is returned.
func jwdo(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, errorf("%v", err)
	}
	defer resp.Body.Close()

	// reading in a buffer to decode it twice
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, errorf("cannot read http body: %v", err)
	}

	var payload any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		return nil, errorf("invalid response from %v %v (%v): %v", req.Method, req.URL.Path, resp.Status, err)
	}
	if msg, ok := errorField(payload); ok {
		return nil, errorf("%s", msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorf("cannot http %v %v: %v", req.Method, req.URL.Path, resp.Status)
	}
	return buf.Bytes(), nil
}

// errorField returns the "error" field of a decoded JSON object, if any.
func errorField(payload any) (string, bool) {
	val, err := jsonpath.Get("$.error", payload)
	if err != nil || val == nil {
		// not an object, or no such key.
		return "", false
	}
	if msg, ok := val.(string); ok {
		return msg, true
	}
	return fmt.Sprint(val), true
}
