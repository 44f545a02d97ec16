package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postSetup(h Handle, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/setup-admin", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.SetupAdmin(w, req)
	return w
}

func TestHandle_SetupAdmin(t *testing.T) {
	f := newFixture(t)
	f.seedAdminProfile(uuid.NullUUID{})
	h := NewHandle(f.service)

	w := postSetup(h, `{"setup_key":"`+testSetupKey+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SetupAdminResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, "540", resp.Credentials.AdmissionNumber)
	assert.Equal(t, testPassword, resp.Credentials.Password)
	assert.Equal(t, "admin@x.org", resp.Credentials.Email)
}

func TestHandle_SetupAdminErrors(t *testing.T) {
	tests := []struct {
		name       string
		seed       bool
		body       string
		wantStatus int
		wantError  string
	}{
		{"wrong key", true, `{"setup_key":"nope"}`, http.StatusForbidden, "Invalid setup key"},
		{"missing key", true, `{}`, http.StatusForbidden, "Invalid setup key"},
		{"malformed body", true, `{"setup_key":`, http.StatusForbidden, "Invalid setup key"},
		{"no admin profile", false, `{"setup_key":"` + testSetupKey + `"}`, http.StatusNotFound, "Admin profile not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.seed {
				f.seedAdminProfile(uuid.NullUUID{})
			}
			w := postSetup(NewHandle(f.service), tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
			assert.Zero(t, f.dir.Count())
		})
	}
}
