package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{InvalidInput("bad"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{New(ErrCodeLookupFailed, "x"), http.StatusInternalServerError},
		{New(ErrCodeCreateFailed, "x"), http.StatusBadRequest},
		{New(ErrCodeUpdateFailed, "x"), http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestWrapKeepsCauseButNotInMessage(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, ErrCodeLookupFailed, "Failed to look up member")

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, ErrCodeLookupFailed))
	assert.Equal(t, "Failed to look up member", Message(err))
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "nothing"))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, ErrCodeLookupFailed, GetCode(wrapped))
}

func TestRender(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/lookup-email", nil)

	Render(w, r, Wrap(fmt.Errorf("db down"), ErrCodeLookupFailed, "Failed to look up member"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to look up member", body.Error)
	assert.NotContains(t, w.Body.String(), "db down")
}
