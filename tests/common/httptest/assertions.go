//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"dealstream/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) bool {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return false
	}
	if target == nil || expectedStatus < 200 || expectedStatus > 299 {
		return true
	}
	return assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope's message
// contains expectedMsg. An empty expectedMsg only checks the envelope decodes.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) bool {
	t.Helper()

	ok := assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body httperr.Body
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error body: %s", w.Body.String()) {
		return false
	}
	if expectedMsg != "" {
		ok = assert.Contains(t, body.Error.Message, expectedMsg) && ok
	}
	return ok
}
