package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesoreria-paralelo/backend/internal/config"
	"github.com/tesoreria-paralelo/backend/internal/controllers"
	"github.com/tesoreria-paralelo/backend/internal/router"
)

// BaseURL is the API URL used in all requests.
const BaseURL = "http://example.com/api"

// Request is a helper method to simplify making a HTTP request for tests.
func Request(co controllers.Controller, t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch b := body.(type) {
	case nil:
		byteBuffer = new(bytes.Buffer)
	case string:
		byteBuffer = bytes.NewBufferString(b)
	case *bytes.Buffer:
		// e.g. a multipart body for a file
		byteBuffer = b
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	apiURL, err := url.Parse(BaseURL)
	require.Nil(t, err)

	r, teardown, err := router.Config(config.Config{APIURL: apiURL})
	defer teardown()

	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	router.AttachRoutes(co, r.Group("/api"), false)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the error message of an error response.
func DecodeError(t *testing.T, s []byte) string {
	var r struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Error
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
